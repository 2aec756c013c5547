package filename

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^image-(\d{8})-(\d{6})\.png$`)

func TestGenerateShape(t *testing.T) {
	for i := 0; i < 200; i++ {
		before := time.Now().Format("20060102")
		name := Generate()
		after := time.Now().Format("20060102")

		parts := namePattern.FindStringSubmatch(name)
		require.NotNil(t, parts, "name %q does not match pattern", name)

		// Date part is the local calendar date; the window guards a
		// midnight rollover during the test.
		assert.Contains(t, []string{before, after}, parts[1])

		suffix, err := strconv.Atoi(parts[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 100000)
		assert.LessOrEqual(t, suffix, 999999)
	}
}
