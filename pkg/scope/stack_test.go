package scope

import (
	"testing"

	ierrors "github.com/seidr-ui/seidr/internal/errors"
	"github.com/seidr-ui/seidr/pkg/observable"
)

func TestStackPushPopNesting(t *testing.T) {
	st := NewStack(nil)

	outer := st.Push()
	inner := st.Push()

	active, err := st.Active()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active != inner {
		t.Error("active scope must be the top of the stack")
	}

	popped, err := st.Pop()
	if err != nil || popped != inner {
		t.Errorf("expected inner scope popped, got %v (%v)", popped, err)
	}

	active, err = st.Active()
	if err != nil || active != outer {
		t.Errorf("expected outer scope restored, got %v (%v)", active, err)
	}
}

func TestActiveOutsideRenderPassFails(t *testing.T) {
	st := NewStack(nil)

	_, err := st.Active()
	if err == nil {
		t.Fatal("Active outside a render pass must fail")
	}
	if !ierrors.IsCode(err, "E001") {
		t.Errorf("expected E001, got %v", err)
	}
}

func TestPopUnderflowFails(t *testing.T) {
	st := NewStack(nil)

	_, err := st.Pop()
	if err == nil {
		t.Fatal("popping an empty stack must fail")
	}
	if !ierrors.IsCode(err, "E002") {
		t.Errorf("expected E002, got %v", err)
	}
}

func TestNestedScopesDoNotLeakValues(t *testing.T) {
	st := NewStack(nil)

	outer := st.Push()
	outerObs := observable.New("outer-state")
	outer.Register(outerObs)

	inner := st.Push()
	innerObs := observable.New("inner-state")
	inner.Register(innerObs)

	innerCapture := inner.CaptureHydrationData()
	if _, err := st.Pop(); err != nil {
		t.Fatalf("pop inner: %v", err)
	}
	outerCapture := outer.CaptureHydrationData()
	if _, err := st.Pop(); err != nil {
		t.Fatalf("pop outer: %v", err)
	}

	if len(innerCapture.Observables) != 1 || innerCapture.Observables[0] != "inner-state" {
		t.Errorf("inner capture leaked: %v", innerCapture.Observables)
	}
	if len(outerCapture.Observables) != 1 || outerCapture.Observables[0] != "outer-state" {
		t.Errorf("outer capture leaked: %v", outerCapture.Observables)
	}
	if innerCapture.RenderContextID == outerCapture.RenderContextID {
		t.Error("nested passes must have distinct render context ids")
	}
}

func TestStackContextIDsIncrease(t *testing.T) {
	st := NewStack(nil)
	a := st.Push()
	b := st.Push()
	if b.ContextID() <= a.ContextID() {
		t.Errorf("expected increasing context ids, got %d then %d", a.ContextID(), b.ContextID())
	}
}
