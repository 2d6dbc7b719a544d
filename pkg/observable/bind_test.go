package observable

import "testing"

func TestBindAppliesImmediately(t *testing.T) {
	o := New("hello")

	var applied []string
	Bind(o, nil, func(v any, _ any) {
		applied = append(applied, v.(string))
	})

	if len(applied) != 1 || applied[0] != "hello" {
		t.Fatalf("expected immediate apply of current value, got %v", applied)
	}
}

func TestBindReappliesOnChange(t *testing.T) {
	o := New(1)

	target := &struct{ value int }{}
	Bind(o, target, func(v any, tgt any) {
		tgt.(*struct{ value int }).value = v.(int)
	})

	o.Set(2)
	if target.value != 2 {
		t.Errorf("expected target updated to 2, got %d", target.value)
	}

	o.Set(9)
	if target.value != 9 {
		t.Errorf("expected target updated to 9, got %d", target.value)
	}
}

func TestBindCancelStopsApplication(t *testing.T) {
	o := New(0)

	applied := 0
	cancel := Bind(o, nil, func(any, any) { applied++ })

	cancel()
	cancel() // idempotent

	o.Set(1)
	if applied != 1 {
		t.Errorf("expected only the initial application, got %d", applied)
	}
}

func TestBindEveryChangeAppliedIndividually(t *testing.T) {
	o := New(0)

	var seen []int
	Bind(o, nil, func(v any, _ any) { seen = append(seen, v.(int)) })

	o.Set(1)
	o.Set(2)
	o.Set(3)

	want := []int{0, 1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("apply %d: expected %d, got %d", i, want[i], seen[i])
		}
	}
}
