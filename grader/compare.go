package grader

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Match judges got against want. Regex patterns use regexp2's .NET-style
// syntax, lookarounds included.
func (c Comparison) Match(got, want string) (bool, error) {
	switch c {
	case ComparisonIncluded:
		return strings.Contains(got, want), nil
	case ComparisonExact:
		return got == want, nil
	case ComparisonRegex:
		re, err := regexp2.Compile(want, regexp2.None)
		if err != nil {
			return false, fmt.Errorf("bad output pattern: %w", err)
		}
		ok, err := re.MatchString(got)
		if err != nil {
			return false, fmt.Errorf("matching output pattern: %w", err)
		}
		return ok, nil
	default:
		return false, fmt.Errorf("unknown comparison %q", c)
	}
}
