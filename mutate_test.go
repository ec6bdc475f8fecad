package option

import "testing"

func TestInsert(t *testing.T) {
	t.Run("Insert on None sets value", func(t *testing.T) {
		o := None[int]()
		if o.Insert(42) != 42 {
			t.Error("expected stored value returned")
		}
		if !o.IsSome() || o.Unwrap() != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("Insert overwrites existing value", func(t *testing.T) {
		o := Some(1)
		if o.Insert(2) != 2 {
			t.Error("expected stored value returned")
		}
		if o.Unwrap() != 2 {
			t.Error("expected Some(2)")
		}
	})
}

func TestGetOrInsert(t *testing.T) {
	t.Run("GetOrInsert on Some keeps existing value", func(t *testing.T) {
		o := Some(1)
		if o.GetOrInsert(2) != 1 {
			t.Error("expected existing value")
		}
		if o.Unwrap() != 1 {
			t.Error("expected state unchanged")
		}
	})

	t.Run("GetOrInsert on None inserts and returns value", func(t *testing.T) {
		o := None[int]()
		if o.GetOrInsert(2) != 2 {
			t.Error("expected inserted value")
		}
		if !o.IsSome() || o.Unwrap() != 2 {
			t.Error("expected Some(2)")
		}
	})
}

func TestGetOrInsertWith(t *testing.T) {
	t.Run("fn invoked exactly once on None", func(t *testing.T) {
		calls := 0
		o := None[int]()
		if o.GetOrInsertWith(func() int { calls++; return 42 }) != 42 {
			t.Error("expected computed value")
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
		if !o.IsSome() || o.Unwrap() != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("fn never invoked on Some", func(t *testing.T) {
		calls := 0
		o := Some(1)
		if o.GetOrInsertWith(func() int { calls++; return 42 }) != 1 {
			t.Error("expected existing value")
		}
		if calls != 0 {
			t.Errorf("expected 0 calls, got %d", calls)
		}
	})

	t.Run("second call returns inserted value without invoking fn", func(t *testing.T) {
		calls := 0
		fn := func() int { calls++; return 42 }
		o := None[int]()
		o.GetOrInsertWith(fn)
		o.GetOrInsertWith(fn)
		if calls != 1 {
			t.Errorf("expected 1 call across both invocations, got %d", calls)
		}
	})
}

func TestTake(t *testing.T) {
	t.Run("Take on Some empties receiver and returns value", func(t *testing.T) {
		o := Some(42)
		taken := o.Take()
		if !taken.IsSome() || taken.Unwrap() != 42 {
			t.Error("expected Some(42) returned")
		}
		if !o.IsNone() {
			t.Error("expected receiver to be None")
		}
	})

	t.Run("Unwrap after Take panics", func(t *testing.T) {
		o := Some(42)
		o.Take()
		expectAbsentPanic(t, "called Unwrap on None", func() { o.Unwrap() })
	})

	t.Run("Take on None is idempotent", func(t *testing.T) {
		o := None[int]()
		if !o.Take().IsNone() {
			t.Error("expected None returned")
		}
		if !o.Take().IsNone() {
			t.Error("expected None on repeated Take")
		}
		if !o.IsNone() {
			t.Error("expected receiver to stay None")
		}
	})

	t.Run("Take zeroes the vacated slot", func(t *testing.T) {
		o := Some([]int{1, 2, 3})
		o.Take()
		if v, _ := o.Get(); v != nil {
			t.Error("expected vacated slot to hold zero value")
		}
	})
}

func TestReplace(t *testing.T) {
	t.Run("Replace on Some returns previous value", func(t *testing.T) {
		o := Some(1)
		previous := o.Replace(2)
		if !previous.IsSome() || previous.Unwrap() != 1 {
			t.Error("expected previous Some(1)")
		}
		if o.Unwrap() != 2 {
			t.Error("expected receiver to hold 2")
		}
	})

	t.Run("Replace on None returns None", func(t *testing.T) {
		o := None[int]()
		previous := o.Replace(2)
		if !previous.IsNone() {
			t.Error("expected previous None")
		}
		if !o.IsSome() || o.Unwrap() != 2 {
			t.Error("expected receiver to hold 2")
		}
	})
}
