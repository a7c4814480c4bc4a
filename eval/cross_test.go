package eval

import "testing"

func TestExprSource(t *testing.T) {
	tts := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"!a", "!a"},
		{"a & b", "a && b"},
		{"a | b", "a || b"},
		{"a => b", "!a || b"},
		{"a <=> b", "a == b"},
		{"!(a & b)", "!(a && b)"},
		{"a & (b | c)", "a && (b || c)"},
		{"(a => b) & c", "(!a || b) && c"},
	}
	for _, tt := range tts {
		if got := ExprSource(mustParse(t, tt.in)); got != tt.want {
			t.Errorf("ExprSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// the expr VM must agree with the native evaluator on every assignment
func TestCrossEvalAgrees(t *testing.T) {
	exprs := []string{
		"a", "!a", "a & b", "a | b", "a => b", "a <=> b",
		"!(a & b) | !c", "(a => b) & (b => c)", "a <=> (b | !c)",
		"!!a & true | false",
	}
	for _, in := range exprs {
		e := mustParse(t, in)
		tbl, err := New(e)
		if err != nil {
			t.Fatal(err)
		}
		for i := range tbl.Rows {
			row := &tbl.Rows[i]
			got, err := CrossEval(e, row.Assignment)
			if err != nil {
				t.Fatalf("CrossEval(%q): %v", in, err)
			}
			if got != row.Result {
				t.Errorf("CrossEval(%q) under %v = %v, native %v",
					in, row.Assignment, got, row.Result)
			}
		}
	}
}

func TestCrossEvalUnbound(t *testing.T) {
	if _, err := CrossEval(mustParse(t, "a & b"), map[string]bool{"a": true}); err == nil {
		t.Fatal("expected compile error for unbound variable")
	}
}
