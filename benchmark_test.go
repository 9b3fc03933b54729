package playlytics

import (
	"testing"
)

func BenchmarkQueueEnqueue(b *testing.B) {
	q := newEventQueue()
	e := newEvent("bench", map[string]any{"n": 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(e)
	}
}

func BenchmarkQueueEnqueueDrain(b *testing.B) {
	q := newEventQueue()
	e := newEvent("bench", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(e)
		if i%100 == 99 {
			q.DrainUpTo(100)
		}
	}
}

func BenchmarkTrack(b *testing.B) {
	client, err := New("srv-bench-key", WithAutoFlush(false), WithMaxBatchSize(1<<30))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	props := map[string]any{"level": 3, "mode": "ranked"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		client.Track("bench", props)
	}
}

func BenchmarkTrackParallel(b *testing.B) {
	client, err := New("srv-bench-key", WithAutoFlush(false), WithMaxBatchSize(1<<30))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.RunParallel(func(pb *testing.PB) {
		props := map[string]any{"level": 3}
		for pb.Next() {
			client.Track("bench", props)
		}
	})
}
