package problems

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gitrdm/gocsp/pkg/csp"
)

// Cryptarithmetic models puzzles of the form word1 + word2 = result, where
// every letter stands for a distinct digit and the arithmetic must hold.
//
// One variable per unique letter with domain {0..9} (leading letters
// {1..9}), an AllDifferent over all letters, and a single linear equation
// whose coefficients are the letters' merged place values:
// sum(word1) + sum(word2) - sum(result) = 0.
type Cryptarithmetic struct {
	word1  string
	word2  string
	result string
}

// NewCryptarithmetic creates a puzzle word1 + word2 = result. Words are
// upper-cased; returns an error for empty words, non-letter characters, or
// more than ten distinct letters.
func NewCryptarithmetic(word1, word2, result string) (*Cryptarithmetic, error) {
	c := &Cryptarithmetic{
		word1:  strings.ToUpper(word1),
		word2:  strings.ToUpper(word2),
		result: strings.ToUpper(result),
	}
	letters := mapset.NewThreadUnsafeSet[rune]()
	for _, word := range []string{c.word1, c.word2, c.result} {
		if word == "" {
			return nil, fmt.Errorf("cryptarithmetic: empty word")
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("cryptarithmetic: %q is not a letter", r)
			}
			letters.Add(r)
		}
	}
	if letters.Cardinality() > 10 {
		return nil, fmt.Errorf("cryptarithmetic: %d distinct letters need more than 10 digits", letters.Cardinality())
	}
	return c, nil
}

// SendMoreMoney returns the classic SEND + MORE = MONEY puzzle.
func SendMoreMoney() *Cryptarithmetic {
	c, _ := NewCryptarithmetic("SEND", "MORE", "MONEY")
	return c
}

// TwoTwoFour returns TWO + TWO = FOUR.
func TwoTwoFour() *Cryptarithmetic {
	c, _ := NewCryptarithmetic("TWO", "TWO", "FOUR")
	return c
}

// EatThatApple returns EAT + THAT = APPLE.
func EatThatApple() *Cryptarithmetic {
	c, _ := NewCryptarithmetic("EAT", "THAT", "APPLE")
	return c
}

// Words returns the puzzle's words in equation order.
func (c *Cryptarithmetic) Words() (word1, word2, result string) {
	return c.word1, c.word2, c.result
}

// CSP builds the constraint problem. Leading letters exclude 0 via their
// domains.
func (c *Cryptarithmetic) CSP() (*csp.CSP[int], error) {
	b := csp.NewBuilder[int](c.Name())

	leading := mapset.NewThreadUnsafeSet(
		rune(c.word1[0]), rune(c.word2[0]), rune(c.result[0]))

	// Letters in first-appearance order keep variable indexing stable.
	var order []rune
	seen := mapset.NewThreadUnsafeSet[rune]()
	for _, word := range []string{c.word1, c.word2, c.result} {
		for _, r := range word {
			if seen.Add(r) {
				order = append(order, r)
			}
		}
	}

	vars := make(map[rune]*csp.Variable[int], len(order))
	for _, letter := range order {
		min := 0
		if leading.Contains(letter) {
			min = 1
		}
		v, err := b.AddVariable(string(letter), csp.IntRange(min, 9))
		if err != nil {
			return nil, err
		}
		vars[letter] = v
	}

	scope := make([]*csp.Variable[int], 0, len(order))
	for _, letter := range order {
		scope = append(scope, vars[letter])
	}
	allDiff, err := csp.NewAllDifferentNamed(scope, "AllDifferent")
	if err != nil {
		return nil, err
	}
	if err := b.AddConstraint(allDiff); err != nil {
		return nil, err
	}

	// Merge place-value coefficients per letter across all three words.
	coefficients := make(map[rune]int, len(order))
	addWordCoefficients(c.word1, 1, coefficients)
	addWordCoefficients(c.word2, 1, coefficients)
	addWordCoefficients(c.result, -1, coefficients)

	coeffs := make([]int, len(order))
	for i, letter := range order {
		coeffs[i] = coefficients[letter]
	}
	equation, err := csp.NewLinearConstraintNamed(scope, coeffs, csp.OpEQ, 0, "Equation")
	if err != nil {
		return nil, err
	}
	if err := b.AddConstraint(equation); err != nil {
		return nil, err
	}

	return b.Build()
}

func addWordCoefficients(word string, sign int, coefficients map[rune]int) {
	placeValue := 1
	for i := len(word) - 1; i >= 0; i-- {
		coefficients[rune(word[i])] += sign * placeValue
		placeValue *= 10
	}
}

// Name returns the puzzle's display name.
func (c *Cryptarithmetic) Name() string {
	return fmt.Sprintf("%s + %s = %s", c.word1, c.word2, c.result)
}

// Description returns a one-line description.
func (c *Cryptarithmetic) Description() string {
	return fmt.Sprintf("Assign digits 0-9 to letters so that %s + %s = %s, with each letter representing a unique digit.",
		c.word1, c.word2, c.result)
}

// Digits maps each word to its decoded number under a solution.
func (c *Cryptarithmetic) Digits(p *csp.CSP[int], solution *csp.Assignment[int]) (n1, n2, nr int, err error) {
	decode := func(word string) (int, error) {
		n := 0
		for _, r := range word {
			v := p.Variable(string(r))
			if v == nil {
				return 0, fmt.Errorf("cryptarithmetic: missing letter %q", r)
			}
			digit, ok := solution.Value(v)
			if !ok {
				return 0, fmt.Errorf("cryptarithmetic: letter %q unassigned", r)
			}
			n = n*10 + digit
		}
		return n, nil
	}

	if n1, err = decode(c.word1); err != nil {
		return
	}
	if n2, err = decode(c.word2); err != nil {
		return
	}
	nr, err = decode(c.result)
	return
}
