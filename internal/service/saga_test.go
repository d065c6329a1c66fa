package service

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSagaAbortRunsCompensationsInReverse(t *testing.T) {
	var order []string
	sg := newSaga("test", DiscardLogger())
	sg.onRollback("first", func() error { order = append(order, "first"); return nil })
	sg.onRollback("second", func() error { order = append(order, "second"); return nil })

	cause := errors.New("step failed")
	if err := sg.abort(cause); err != cause {
		t.Errorf("abort returned %v, want the cause unchanged", err)
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("compensation order = %v, want [second first]", order)
	}
}

func TestSagaAbortJoinsCompensationErrors(t *testing.T) {
	sg := newSaga("test", DiscardLogger())
	sg.onRollback("restore", func() error { return errInjected })

	cause := errors.New("step failed")
	err := sg.abort(cause)
	if !errors.Is(err, cause) || !errors.Is(err, errInjected) {
		t.Errorf("abort err = %v, want both cause and compensation error", err)
	}
}

func TestLockTableOppositeOrderDoesNotDeadlock(t *testing.T) {
	locks := newLockTable()
	done := make(chan struct{})

	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				unlock := locks.lock("a", "b")
				unlock()
			}()
			go func() {
				defer wg.Done()
				unlock := locks.lock("b", "a")
				unlock()
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lock acquisition deadlocked")
	}
}

func TestLockTableDuplicateKeys(t *testing.T) {
	locks := newLockTable()
	unlock := locks.lock("a", "a")
	unlock()

	// The key must be free again.
	unlock = locks.lock("a")
	unlock()
}
