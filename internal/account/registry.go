package account

import (
	"fmt"
	"sync"
)

// registry is the process-wide account number state: a monotonic counter for
// generated numbers and the set of every number handed out so far. It lives
// for the whole process and is never reset. The mutex keeps it consistent if
// accounts are ever created from multiple goroutines.
type registry struct {
	mu      sync.Mutex
	counter int
	used    map[string]bool
}

var numbers = &registry{
	counter: 999,
	used:    make(map[string]bool),
}

// reserve claims number for a new account. The number must not have been
// handed out before, whether generated or caller-supplied.
func (r *registry) reserve(number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used[number] {
		return fmt.Errorf("%w: %s", ErrDuplicateAccountNumber, number)
	}
	r.used[number] = true
	return nil
}

// next generates the next candidate number from the counter. The candidate is
// not reserved here; reserve may still reject it if a caller-supplied number
// already took it.
func (r *registry) next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	return formatAccountNumber(r.counter)
}

// SeedCounter raises the generated-number counter to at least n. Seeds below
// the current counter are ignored so numbers stay monotonic.
func SeedCounter(n int) {
	numbers.mu.Lock()
	defer numbers.mu.Unlock()
	if n > numbers.counter {
		numbers.counter = n
	}
}
