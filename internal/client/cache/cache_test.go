package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
)

type entry struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

type jsonCodec struct{}

func (jsonCodec) Encode(v *entry) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Decode(data []byte) (*entry, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func backends(t *testing.T) map[string]Cache[*entry] {
	t.Helper()

	b, err := NewBadger[*entry](jsonCodec{})
	if err != nil {
		t.Fatalf("NewBadger() error = %v", err)
	}
	t.Cleanup(func() { b.Close() })

	return map[string]Cache[*entry]{
		BackendMemory: NewMemory[*entry](),
		BackendBadger: b,
	}
}

func TestCache_PutGet(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := c.Get("/games"); ok {
				t.Fatal("empty cache returned a hit")
			}

			want := &entry{Path: "/games", Count: 3}
			if err := c.Put("/games", want); err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			got, ok := c.Get("/games")
			if !ok {
				t.Fatal("Get() missed after Put()")
			}
			if *got != *want {
				t.Errorf("Get() = %+v, want %+v", got, want)
			}

			if err := c.Put("/games", &entry{Path: "/games", Count: 4}); err != nil {
				t.Fatal(err)
			}
			if got, _ := c.Get("/games"); got.Count != 4 {
				t.Errorf("Put() did not replace, count = %d", got.Count)
			}
			if c.Len() != 1 {
				t.Errorf("Len() = %d, want 1", c.Len())
			}
		})
	}
}

func TestCache_InvalidatePurge(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				key := fmt.Sprintf("/lessons/%d", i)
				if err := c.Put(key, &entry{Path: key}); err != nil {
					t.Fatal(err)
				}
			}

			c.Invalidate("/lessons/2")
			if _, ok := c.Get("/lessons/2"); ok {
				t.Error("invalidated key still present")
			}
			if c.Len() != 4 {
				t.Errorf("Len() = %d, want 4", c.Len())
			}

			c.Purge()
			if c.Len() != 0 {
				t.Errorf("Len() after Purge = %d", c.Len())
			}
		})
	}
}

func TestMemory_PointerIdentity(t *testing.T) {
	m := NewMemory[*entry]()
	e := &entry{Path: "/sections"}
	_ = m.Put("/sections", e)

	got, _ := m.Get("/sections")
	if got != e {
		t.Error("memory cache should return the stored pointer")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMemory_Concurrent(t *testing.T) {
	m := NewMemory[int](WithShards(4))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%8)
			_ = m.Put(key, i)
			m.Get(key)
		}(i)
	}
	wg.Wait()

	if m.Len() != 8 {
		t.Errorf("Len() = %d, want 8", m.Len())
	}
}

func TestBadger_Closed(t *testing.T) {
	b, err := NewBadger[*entry](jsonCodec{})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := b.Put("/games", &entry{}); err != ErrClosed {
		t.Errorf("Put() after Close = %v, want ErrClosed", err)
	}
	if _, ok := b.Get("/games"); ok {
		t.Error("Get() after Close should miss")
	}
}

func TestNew(t *testing.T) {
	c, err := New[*entry]("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*Memory[*entry]); !ok {
		t.Errorf("default backend = %T, want *Memory", c)
	}

	if _, err := New[*entry](BackendBadger, nil); err == nil {
		t.Error("badger without codec should fail")
	}
	if _, err := New[*entry]("redis", jsonCodec{}); err == nil {
		t.Error("unknown backend should fail")
	}

	c, err = New[*entry](BackendBadger, jsonCodec{})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
}
