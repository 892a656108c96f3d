package codegen

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

var exportTime = time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.UTC)

func collection() []types.Animation {
	h := types.NewHover()
	c := types.NewCarousel()
	s := types.NewScroll()
	s.Trigger.Scrub = types.ScrubSmoothing(1)
	s.Tween.Stagger = types.Float(0.15)
	return []types.Animation{h, c, s}
}

func TestExportEnvelope(t *testing.T) {
	data, err := Export(collection(), exportTime)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "{\n  \"version\": \"1.0\",\n  \"exportedAt\": \"2026-03-04T05:06:07.890Z\",\n  \"animations\": ["))
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, `"scrub": 1,`)
	assert.Contains(t, out, `"stagger": 0.15`)
}

func TestExportTimeIsUTC(t *testing.T) {
	local := exportTime.In(time.FixedZone("east", 3*3600))
	doc := NewDocument(nil, local)
	assert.Equal(t, "2026-03-04T05:06:07.890Z", doc.ExportedAt)

	at, err := doc.Time()
	require.NoError(t, err)
	assert.True(t, at.Equal(exportTime))
}

func TestExportStableExceptTimestamp(t *testing.T) {
	list := collection()
	a, err := Export(list, exportTime)
	require.NoError(t, err)
	b, err := Export(list, exportTime.Add(time.Hour))
	require.NoError(t, err)

	strip := func(s string) string {
		i := strings.Index(s, `"exportedAt"`)
		j := strings.Index(s, `"animations"`)
		return s[:i] + s[j:]
	}
	assert.Equal(t, strip(string(a)), strip(string(b)))
}

func TestExportOmitsAbsentOptionals(t *testing.T) {
	h := types.NewHover()
	h.Enter.Opacity = nil
	data, err := Export([]types.Animation{h}, exportTime)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(data), `"opacity"`), "only the leave state carries opacity")
	assert.NotContains(t, string(data), "null")
}

func TestExportKeepsSelectorsReadable(t *testing.T) {
	h := types.NewHover()
	h.TargetSelector = "ul > li & a"
	data, err := Snapshot([]types.Animation{h})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"targetSelector": "ul > li & a"`)
}

func TestSnapshot(t *testing.T) {
	data, err := Snapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = Snapshot(collection())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": "))
}

func TestParseDocumentRoundTrip(t *testing.T) {
	list := collection()
	data, err := Export(list, exportTime)
	require.NoError(t, err)

	doc, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, Version, doc.Version)
	assert.Equal(t, "2026-03-04T05:06:07.890Z", doc.ExportedAt)
	require.Len(t, doc.Animations, len(list))
	for i := range list {
		assert.Equal(t, list[i], doc.Animations[i])
	}

	again, err := Export(doc.Animations, exportTime)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestParseDocumentBareArray(t *testing.T) {
	list := collection()
	data, err := Snapshot(list)
	require.NoError(t, err)

	doc, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, Version, doc.Version)
	assert.Empty(t, doc.ExportedAt)
	assert.Equal(t, Render(list[2]), Render(doc.Animations[2]))

	doc, err = ParseDocument([]byte(" [] "))
	require.NoError(t, err)
	assert.NotNil(t, doc.Animations)
	assert.Empty(t, doc.Animations)
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "unknown type", in: `[{"id":"a","type":"parallax"}]`, want: types.ErrUnknownType},
		{name: "missing id", in: `[{"type":"hover"}]`, want: types.ErrInvalidID},
		{name: "version", in: `{"version":"2.0","exportedAt":"","animations":[]}`, want: ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := ParseDocument([]byte("{not json"))
	assert.Error(t, err)
}

func TestParseDocumentNormalizesStagger(t *testing.T) {
	s := types.NewScroll()
	data, err := Snapshot([]types.Animation{s})
	require.NoError(t, err)
	raw := strings.Replace(string(data), `"ease": "power2.out"`, `"ease": "power2.out", "stagger": 0`, 1)

	doc, err := ParseDocument([]byte(raw))
	require.NoError(t, err)
	got := doc.Animations[0].(*types.Scroll)
	assert.Nil(t, got.Tween.Stagger)
}
