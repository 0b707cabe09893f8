package auth

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleAuth = `{"authorization":{"requests":[{"program_id":"credits.aleo"}],"transitions":[]},"fee_authorization":"fee-blob","amount":100}`

func sample(t *testing.T) map[string]interface{} {
	v, err := decode(sampleAuth)
	if err != nil {
		t.Fatal(err)
	}

	return v.(map[string]interface{})
}

// wrapString JSON-encodes text as a string literal n times.
func wrapString(t *testing.T, text string, n int) string {
	for i := 0; i < n; i++ {
		b, err := json.Marshal(text)
		if err != nil {
			t.Fatal(err)
		}
		text = string(b)
	}

	return text
}

func TestNormalizeWithNoise(t *testing.T) {
	raw := "copied from wallet >>> " + sampleAuth + " <<< end\n-- signature ok"

	get, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}

	want := sample(t)
	if !reflect.DeepEqual(map[string]interface{}(get), want) {
		t.Fatalf("Get=%v, want=%v", get, want)
	}
}

func TestNormalizeStringWrapped(t *testing.T) {
	want := sample(t)

	for level := 1; level <= 4; level++ {
		raw := wrapString(t, sampleAuth, level)

		get, err := Normalize(raw)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}

		if !reflect.DeepEqual(map[string]interface{}(get), want) {
			t.Fatalf("level %d: Get=%v, want=%v", level, get, want)
		}
	}
}

func TestNormalizeUnwrapBounded(t *testing.T) {
	raw := wrapString(t, sampleAuth, 5)

	_, err := Normalize(raw)
	if !errors.Is(err, ErrNormalization) {
		t.Fatalf("Get error=%v, want=%v", err, ErrNormalization)
	}
}

func TestNormalizeEnvelope(t *testing.T) {
	b, err := json.Marshal(map[string]string{"blob": sampleAuth})
	if err != nil {
		t.Fatal(err)
	}

	get, err := Normalize("response: " + string(b))
	if err != nil {
		t.Fatal(err)
	}

	want := sample(t)
	if !reflect.DeepEqual(map[string]interface{}(get), want) {
		t.Fatalf("Get=%v, want=%v", get, want)
	}
}

func TestNormalizeEnvelopeWithStringWrappedValue(t *testing.T) {
	raw := `{"data": ` + wrapString(t, sampleAuth, 2) + `}`

	// The envelope value decodes once, leaving a string, which is not a mapping.
	_, err := Normalize(raw)
	if !errors.Is(err, ErrNormalization) {
		t.Fatalf("Get error=%v, want=%v", err, ErrNormalization)
	}
}

func TestNormalizeSingleEntryKept(t *testing.T) {
	get, err := Normalize(`{"data": "not json at all"}`)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{"data": "not json at all"}
	if !reflect.DeepEqual(map[string]interface{}(get), want) {
		t.Fatalf("Get=%v, want=%v", get, want)
	}
}

func TestNormalizeFailures(t *testing.T) {
	testCases := []string{
		"",
		"no json here",
		"{not json} either",
		`[1, 2, 3]`,
		`"just a string"`,
		`{"x": "[1,2]"}`,
		`42`,
	}

	for _, raw := range testCases {
		get, err := Normalize(raw)
		if !errors.Is(err, ErrNormalization) {
			t.Fatalf("Get=%v, error=%v, want %v for %q", get, err, ErrNormalization, raw)
		}
	}
}

func TestNormalizeEscapedQuotes(t *testing.T) {
	raw := `prefix {"k": "a \" { b", "n": 2} suffix }`

	get, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}

	if get["k"] != `a " { b` {
		t.Fatalf("Get=%v, want=%s", get["k"], `a " { b`)
	}
	if get["n"] != json.Number("2") {
		t.Fatalf("Get=%v, want=2", get["n"])
	}
}

func TestNormalizeLongestWins(t *testing.T) {
	raw := sampleAuth + "\n\nlater: {\"authorization\":1,\"fee_authorization\":2}"

	get, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}

	if get["fee_authorization"] != "fee-blob" {
		t.Fatalf("Get=%v, want=fee-blob", get["fee_authorization"])
	}
}

func TestNormalizeWholeTextFallback(t *testing.T) {
	raw := "\n  " + wrapString(t, sampleAuth, 1) + "\n"
	if _, ok := longestObject(raw); ok {
		t.Fatalf("Braces inside a JSON string must not produce a candidate")
	}

	get, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := get[KeyAuthorization]; !ok {
		t.Fatalf("Get=%v, want key %s", get, KeyAuthorization)
	}
}

func TestNormalizeNumbersPreserved(t *testing.T) {
	raw := `{"authorization": 123456789012345678901234567890, "fee_authorization": 1.50}`

	get, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}

	b, err := json.Marshal(get)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(b), "123456789012345678901234567890") ||
		!strings.Contains(string(b), "1.50") {
		t.Fatalf("Numbers not preserved: %s", b)
	}
}
