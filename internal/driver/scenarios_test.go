package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalsTo runs src with stdin and asserts it produces want, the same shape
// as the reference implementation's assert_evals_to! macro.
func evalsTo(t *testing.T, src, stdin, want string) {
	t.Helper()
	got, err := EvalToString(InputString(src), InputString(stdin), ParseOptions{})
	require.NoError(t, err, "evaluating %q", src)
	assert.Equal(t, want, got, "%q did not evaluate as expected", src)
}

func TestScenarioHellos(t *testing.T) {
	evalsTo(t, "`.!`.d`.l`.r`.o`.w`. `.,`.o`.l`.l`.e`.Hi", "", "Hello, world!")
}

func TestScenarioHelloRepeated(t *testing.T) {
	src := "" +
		"```si`k``s.H``s.e``s.l``s.l``s.o``s. " +
		"``s.w``s.o``s.r``s.l``s.d``s.!``sri" +
		"``si``si``si``si``si``si``si``si`ki"
	want := ""
	for i := 0; i < 8; i++ {
		want += "Hello world!\n"
	}
	evalsTo(t, src, "", want)
}

func TestScenarioCat(t *testing.T) {
	evalsTo(t, "``cd``d`@|`cd", "example", "example")
	evalsTo(t, "``cd``d`@|`cd", "", "")
	evalsTo(t, "``cd``d`@|`cd", "1234", "1234")
}

func TestScenarioChurchNumeral(t *testing.T) {
	evalsTo(t, "```si`k``s.f``s.o``s.o``s.p``s. i``si``si``si`ki", "", "foop foop foop ")
}

func TestScenarioQuineReproducesItself(t *testing.T) {
	quine := "" +
		"``d.v```s``si`kv``si`k`d`..`.c`.s`.``.``.s`.``.`v" +
		"``s``sc.```s``sc.```s``sc.d``s``sc..``s``sc.v``s`" +
		"`sc.```s``sc.```s``sc.```s``sc.s``s``sc.```s``sc." +
		"```s``sc.s``s``sc.i``s``sc.```s``sc.k``s``sc.v``s" +
		"``sc.```s``sc.```s``sc.s``s``sc.i``s``sc.```s``sc" +
		".k``s``sc.```s``sc.d``s``sc.```s``sc..``s``sc..``" +
		"s``sc.```s``sc..``s``sc.c``s``sc.```s``sc..``s``s" +
		"c.s``s``sc.```s``sc..``s``sc.```s``sc.```s``sc..`" +
		"`s``sc.```s``sc.```s``sc..``s``sc.s``s``sc.```s``" +
		"sc..``s``sc.```s``sc.```s``sc..``s``sc.```s``sc.vv"
	evalsTo(t, quine, "", quine)
}

// TestScenarioAbstractionEliminationEquivalents covers the unl_test_g0/g1
// families: distinct combinator expressions that either print the same
// "*\n" as the plain `r`.*i, or print only "\n" where the `.*i ends up
// captured unevaluated inside a d promise, exercising d/k/s/i at several
// nesting depths.
func TestScenarioAbstractionEliminationEquivalents(t *testing.T) {
	cases := []struct{ src, want string }{
		{"`r`.*i", "*\n"},
		{"`r`d`.*i", "\n"},
		{"`r``d.*i", "*\n"},
		{"`r``id`.*i", "\n"},
		{"`r``dd`.*i", "*\n"},
		{"`r```kdi`.*i", "\n"},
		{"`r```sd.*i", "*\n"},
		{"`r```s`kd`.*ii", "*\n"},
		{"`r```s`k.*`kii", "*\n"},
		{"`r``k`.*ii", "*\n"},
		{"`r```si`ki.*", "*\n"},
		{"`r```s`k.*ii", "*\n"},
	}
	for _, c := range cases {
		evalsTo(t, c.src, "", c.want)
	}
}
