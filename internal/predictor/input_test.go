package predictor_test

import (
	"dgaintel/internal/predictor"
	"dgaintel/pkg/serrors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromValue(t *testing.T) {
	in, err := predictor.FromValue("microsoft.com")
	require.NoError(t, err)
	require.Equal(t, predictor.ShapeSingle, in.Shape())

	in, err = predictor.FromValue([]string{"a.com", "b.com"})
	require.NoError(t, err)
	require.Equal(t, predictor.ShapeMany, in.Shape())

	in, err = predictor.FromValue([]any{"a.com", "a.com"})
	require.NoError(t, err)
	domains, err := in.Resolve()
	require.NoError(t, err)
	require.Equal(t, []string{"a.com", "a.com"}, domains)
}

func TestFromValue_InvalidInputKind(t *testing.T) {
	for _, v := range []any{nil, 42, []int{1}, []any{"a.com", 3}, map[string]string{}} {
		_, err := predictor.FromValue(v)
		require.ErrorIs(t, err, serrors.ErrInvalidInputKind, "value %#v", v)
	}
}

func TestInput_ZeroValueRejected(t *testing.T) {
	_, err := predictor.Input{}.Resolve()
	require.ErrorIs(t, err, serrors.ErrInvalidInputKind)
}

func TestInput_SingleIsNeverAPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.com")
	require.NoError(t, os.WriteFile(path, []byte("other.com\n"), 0o600))

	domains, err := predictor.Single(path).Resolve()
	require.NoError(t, err)
	require.Equal(t, []string{path}, domains)
}

func TestInput_ManyCopiesDomains(t *testing.T) {
	src := []string{"a.com", "b.com"}
	domains, err := predictor.Many(src).Resolve()
	require.NoError(t, err)

	domains[0] = "changed"
	require.Equal(t, "a.com", src[0])
}

func TestReadDomainList(t *testing.T) {
	path := writeDomainList(t, "  microsoft.com\r\n\n\t\nwikipedia.com \nmicrosoft.com")

	domains, err := predictor.ReadDomainList(path)
	require.NoError(t, err)
	require.Equal(t, []string{"microsoft.com", "wikipedia.com", "microsoft.com"}, domains)
}

func TestReadDomainList_NotFound(t *testing.T) {
	_, err := predictor.ReadDomainList(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, serrors.ErrFileNotFound)

	_, err = predictor.ReadDomainList(t.TempDir())
	require.ErrorIs(t, err, serrors.ErrFileNotFound)
}
