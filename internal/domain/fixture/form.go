package fixture

// FormResult is one entry of a recent-results string.
type FormResult string

const (
	FormWin  FormResult = "W"
	FormDraw FormResult = "D"
	FormLoss FormResult = "L"
)

// ParseForm splits a form string such as "WWDLW" into results, most recent last.
func ParseForm(form string) []FormResult {
	out := make([]FormResult, 0, len(form))
	for _, r := range form {
		out = append(out, FormResult(string(r)))
	}
	return out
}

// LastForm returns at most n of the most recent results.
func LastForm(form string, n int) []FormResult {
	results := ParseForm(form)
	if n >= 0 && len(results) > n {
		return results[len(results)-n:]
	}
	return results
}
