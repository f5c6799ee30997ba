package fakeskema

import "github.com/reoring/fakeskema/i18n"

// IssueAt creates an Issue at the given path. The message is translated from
// code and params; the cause defaults to the sentinel registered for code.
func IssueAt(p PathRef, code string, params map[string]any) Issue {
	return Issue{
		Path:    p.Pointer(),
		Code:    code,
		Message: i18n.T(code, stringParams(params)),
		Cause:   codeCauses[code],
		Params:  params,
	}
}

func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = formatScalar(v)
	}
	return out
}
