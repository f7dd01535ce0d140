package roster

import (
	"errors"
	"testing"

	"github.com/JonMunkholm/employee-table/internal/notify"
)

func validForm() Form {
	return Form{
		Name:     "Joe Black",
		Position: "Manager",
		Office:   "London",
		Age:      "35",
		Salary:   "120000",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Form)
		want   Reason
	}{
		{name: "valid form", modify: func(f *Form) {}, want: ReasonNone},
		{name: "missing name", modify: func(f *Form) { f.Name = "" }, want: ReasonIncomplete},
		{name: "blank salary", modify: func(f *Form) { f.Salary = "   " }, want: ReasonIncomplete},
		{name: "missing office", modify: func(f *Form) { f.Office = "" }, want: ReasonIncomplete},
		{name: "short name", modify: func(f *Form) { f.Name = "Joe" }, want: ReasonBadName},
		{name: "name with digits", modify: func(f *Form) { f.Name = "Joe Black 2" }, want: ReasonBadName},
		{name: "long name", modify: func(f *Form) { f.Name = "Abcdefghijklmnopqrstuvwxyzabcde" }, want: ReasonBadName},
		{name: "short position", modify: func(f *Form) { f.Position = "X" }, want: ReasonBadPosition},
		{name: "position with symbols", modify: func(f *Form) { f.Position = "C++ Dev" }, want: ReasonBadPosition},
		{name: "unknown office", modify: func(f *Form) { f.Office = "Paris" }, want: ReasonIncomplete},
		{name: "age at lower bound", modify: func(f *Form) { f.Age = "18" }, want: ReasonBadAge},
		{name: "age at upper bound", modify: func(f *Form) { f.Age = "90" }, want: ReasonBadAge},
		{name: "age not a number", modify: func(f *Form) { f.Age = "thirty" }, want: ReasonBadAge},
		{name: "age fraction truncated", modify: func(f *Form) { f.Age = "18.9" }, want: ReasonBadAge},
		{name: "age exponent reads leading digits", modify: func(f *Form) { f.Age = "2e1" }, want: ReasonBadAge},
		{name: "age exponent with fraction", modify: func(f *Form) { f.Age = "19.9e0" }, want: ReasonNone},
		{name: "age huge number", modify: func(f *Form) { f.Age = "99999999999999999999999" }, want: ReasonBadAge},
		{name: "age leading plus sign", modify: func(f *Form) { f.Age = "+30" }, want: ReasonNone},
		{name: "age negative", modify: func(f *Form) { f.Age = "-30" }, want: ReasonBadAge},
		{name: "age just inside bounds", modify: func(f *Form) { f.Age = "19" }, want: ReasonNone},
		{name: "negative salary", modify: func(f *Form) { f.Salary = "-5" }, want: ReasonBadSalary},
		{name: "decimal salary", modify: func(f *Form) { f.Salary = "100.50" }, want: ReasonBadSalary},
		{name: "first failure wins", modify: func(f *Form) { f.Name = "Jo"; f.Age = "5" }, want: ReasonBadName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.modify(&f)

			err := Validate(f)
			if got := ReasonOf(err); got != tt.want {
				t.Errorf("Validate() reason = %v, want %v (err = %v)", got, tt.want, err)
			}
			if (err == nil) != (tt.want == ReasonNone) {
				t.Errorf("Validate() error = %v, want nil only for ReasonNone", err)
			}
		})
	}
}

func TestReasonOf_ForeignError(t *testing.T) {
	if got := ReasonOf(errors.New("boom")); got != ReasonNone {
		t.Errorf("ReasonOf(foreign) = %v, want none", got)
	}
}

func TestNotice(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantKind  notify.Kind
	}{
		{name: "success", err: nil, wantTitle: "Success!", wantKind: notify.KindSuccess},
		{name: "incomplete", err: ValidationError{Reason: ReasonIncomplete}, wantTitle: "Wrong!", wantKind: notify.KindError},
		{name: "bad name", err: ValidationError{Reason: ReasonBadName}, wantTitle: "Wrong Name!", wantKind: notify.KindError},
		{name: "bad position", err: ValidationError{Reason: ReasonBadPosition}, wantTitle: "Wrong Position name!", wantKind: notify.KindError},
		{name: "bad age", err: ValidationError{Reason: ReasonBadAge}, wantTitle: "Wrong Age!", wantKind: notify.KindError},
		{name: "bad salary", err: ValidationError{Reason: ReasonBadSalary}, wantTitle: "Wrong Salary!", wantKind: notify.KindError},
		{name: "unknown error", err: errors.New("boom"), wantTitle: "Wrong!", wantKind: notify.KindError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Notice(tt.err)
			if n.Title != tt.wantTitle {
				t.Errorf("Notice().Title = %q, want %q", n.Title, tt.wantTitle)
			}
			if n.Kind != tt.wantKind {
				t.Errorf("Notice().Kind = %q, want %q", n.Kind, tt.wantKind)
			}
		})
	}
}
