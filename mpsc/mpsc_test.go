package mpsc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendRecvOrder(t *testing.T) {
	tx, rx := Channel[int]()

	for value := range 5 {
		require.True(t, tx.Send(value))
	}

	require.Equal(t, 5, rx.Len())

	for expected := range 5 {
		value, ok := rx.Recv()
		require.True(t, ok)
		require.Equal(t, expected, value)
	}

	require.Equal(t, 0, rx.Len())
}

func TestTryRecvEmpty(t *testing.T) {
	_, rx := Channel[string]()

	value, ok := rx.TryRecv()
	require.False(t, ok)
	require.Zero(t, value)
}

func TestDrain(t *testing.T) {
	tx, rx := Channel[int]()

	tx.Send(1)
	tx.Send(2)
	tx.Send(3)

	values := rx.Drain(nil)
	require.Equal(t, []int{1, 2, 3}, values)

	// nothing left after a drain
	require.Empty(t, rx.Drain(values[:0]))
}

func TestSendAfterClose(t *testing.T) {
	tx, rx := Channel[int]()

	rx.Close()

	// discarded, not an error, not a panic
	require.False(t, tx.Send(1))
	require.Equal(t, 0, rx.Len())

	// closing again is fine
	rx.Close()
}

func TestCloseDiscardsPending(t *testing.T) {
	tx, rx := Channel[int]()

	tx.Send(1)
	tx.Send(2)
	rx.Close()

	_, ok := rx.TryRecv()
	require.False(t, ok)
}

func TestRecvWakesOnClose(t *testing.T) {
	_, rx := Channel[int]()

	done := make(chan struct{})
	go func() {
		defer close(done)

		_, ok := rx.Recv()
		require.False(t, ok)
	}()

	rx.Close()
	<-done
}

func TestRecvWakesOnSend(t *testing.T) {
	tx, rx := Channel[int]()

	done := make(chan int)
	go func() {
		value, ok := rx.Recv()
		require.True(t, ok)
		done <- value
	}()

	tx.Send(42)
	require.Equal(t, 42, <-done)
}

func TestConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 1000

	tx, rx := Channel[int]()

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perProducer {
				tx.Send(p*perProducer + i)
			}
		}()
	}

	wg.Wait()

	seen := map[int]bool{}
	for {
		value, ok := rx.TryRecv()
		if !ok {
			break
		}

		require.False(t, seen[value], "value %d delivered twice", value)
		seen[value] = true
	}

	// every value arrives exactly once
	require.Len(t, seen, producers*perProducer)
}

func TestPerProducerOrder(t *testing.T) {
	tx, rx := Channel[int]()

	var wg sync.WaitGroup
	for p := range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 500 {
				tx.Send(p*1000 + i)
			}
		}()
	}

	wg.Wait()

	// values of each producer must arrive in the order they were sent,
	// the interleaving between producers is unspecified
	last := map[int]int{}
	for {
		value, ok := rx.TryRecv()
		if !ok {
			break
		}

		producer := value / 1000
		require.Greater(t, value, last[producer]-1)
		last[producer] = value + 1
	}
}
