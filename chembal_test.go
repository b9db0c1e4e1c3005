package chembal

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestBalance(t *testing.T) {
	got, err := Balance("H2 + O2 -> H2O")
	if err != nil {
		t.Fatal(err)
	}
	if want := "2 H2 + 1 O2 -> 2 H2O"; got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestBalanceErrorKinds(t *testing.T) {
	if _, err := Balance("H2O"); !errors.Is(err, ErrMalformedReaction) {
		t.Errorf("missing arrow: %v", err)
	}
	if _, err := Balance("H(2 -> H2"); !errors.Is(err, ErrMalformedFormula) {
		t.Errorf("bad formula: %v", err)
	}
	if _, err := Balance("H2 -> O2"); !errors.Is(err, ErrUnbalanceable) {
		t.Errorf("contradictory: %v", err)
	}
}

func TestParseFormula(t *testing.T) {
	got, err := ParseFormula("Cu(NO3)2")
	if err != nil {
		t.Fatal(err)
	}
	want := ElementCounts{"Cu": 1, "N": 2, "O": 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Balancing is stateless; concurrent calls must be independent and
// deterministic.
func TestBalanceConcurrent(t *testing.T) {
	const workers = 16
	want := []int{2, 13, 8, 10}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Balance("C4H10 + O2 -> CO2 + H2O")
			if err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(got.Coefficients(), want) {
				errs <- errors.New("coefficients differ between goroutines")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
