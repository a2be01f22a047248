package params_test

import (
	"errors"
	"testing"

	params "github.com/c-mendoza/paramcollection"
)

func TestEscapedName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "radius", "radius"},
		{"spaces", "My Param 0", "My_Param_0"},
		{"allowed punctuation", "a_b:c.d-e", "a_b:c.d-e"},
		{"symbols", "x/y%z", "x_y_z"},
		{"leading digit", "0offset", "_0offset"},
		{"empty", "", "_"},
		{"non-ascii", "größe", "gr__e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.NewParameter(tt.in, 0)
			if got := p.EscapedName(); got != tt.want {
				t.Errorf("EscapedName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetNotifiesOnlyOnChange(t *testing.T) {
	p := params.NewParameter("x", 5)

	fired := 0
	p.OnChange(func(int) { fired++ })

	p.Set(5)
	if fired != 0 {
		t.Errorf("OnChange fired %d times for a same-value Set, want 0", fired)
	}
	p.Set(6)
	if fired != 1 {
		t.Errorf("OnChange fired %d times, want 1", fired)
	}
	if p.Get() != 6 {
		t.Errorf("Get() = %d, want 6", p.Get())
	}
}

func TestListenerRelease(t *testing.T) {
	p := params.NewParameter("x", 0)

	fired := 0
	l := p.OnChange(func(int) { fired++ })
	p.Set(1)
	l.Release()
	l.Release() // idempotent
	p.Set(2)

	if fired != 1 {
		t.Errorf("OnChange fired %d times, want 1", fired)
	}
}

func TestListenersFireInSubscriptionOrder(t *testing.T) {
	p := params.NewParameter("x", 0)

	var order []int
	p.OnChange(func(int) { order = append(order, 1) })
	p.OnChange(func(int) { order = append(order, 2) })
	p.OnChange(func(int) { order = append(order, 3) })
	p.Set(1)

	want := []int{1, 2, 3}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("delivery order = %v, want %v", order, want)
		}
	}
}

func TestBoundsAreMetadataNotClamps(t *testing.T) {
	p := params.NewParameter("x", 0)
	p.SetMin(0)
	p.SetMax(10)
	p.Set(50)
	if p.Get() != 50 {
		t.Errorf("Get() = %d, want 50 (bounds must not clamp)", p.Get())
	}
}

func TestValueStringRoundTrip(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		p := params.NewParameter("x", -42)
		q := params.NewParameter("x", 0)
		if err := q.SetValueString(p.ValueString()); err != nil {
			t.Fatalf("SetValueString() error = %v", err)
		}
		if q.Get() != -42 {
			t.Errorf("Get() = %d, want -42", q.Get())
		}
	})
	t.Run("float", func(t *testing.T) {
		p := params.NewParameter("x", 12.5)
		q := params.NewParameter("x", 0.0)
		if err := q.SetValueString(p.ValueString()); err != nil {
			t.Fatalf("SetValueString() error = %v", err)
		}
		if q.Get() != 12.5 {
			t.Errorf("Get() = %v, want 12.5", q.Get())
		}
	})
	t.Run("bool", func(t *testing.T) {
		p := params.NewParameter("x", true)
		q := params.NewParameter("x", false)
		if err := q.SetValueString(p.ValueString()); err != nil {
			t.Fatalf("SetValueString() error = %v", err)
		}
		if !q.Get() {
			t.Error("Get() = false, want true")
		}
	})
	t.Run("string", func(t *testing.T) {
		p := params.NewParameter("x", "hello world")
		q := params.NewParameter("x", "")
		if err := q.SetValueString(p.ValueString()); err != nil {
			t.Fatalf("SetValueString() error = %v", err)
		}
		if q.Get() != "hello world" {
			t.Errorf("Get() = %q, want %q", q.Get(), "hello world")
		}
	})
}

func TestSetValueStringParseError(t *testing.T) {
	p := params.NewParameter("x", 7)
	err := p.SetValueString("not a number")
	if !errors.Is(err, params.ErrParse) {
		t.Fatalf("SetValueString() error = %v, want ErrParse", err)
	}
	if p.Get() != 7 {
		t.Errorf("Get() = %d, want 7 (value must be untouched on parse failure)", p.Get())
	}
}

func TestSetValueStringIsSilent(t *testing.T) {
	p := params.NewParameter("x", 0)
	fired := 0
	p.OnChange(func(int) { fired++ })
	if err := p.SetValueString("9"); err != nil {
		t.Fatalf("SetValueString() error = %v", err)
	}
	if fired != 0 {
		t.Errorf("OnChange fired %d times for SetValueString, want 0", fired)
	}
	if p.Get() != 9 {
		t.Errorf("Get() = %d, want 9", p.Get())
	}
}
