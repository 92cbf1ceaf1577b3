package models

// Тесты внешних идентификаторов (extid.go).
//
// Разбор — граница безопасности: любая форма вне контракта обязана давать
// ErrUntrustedExternalID, а не «похожий» результат.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseExternalID_Draft(t *testing.T) {
	t.Parallel()

	ext, err := ParseExternalID("d42")
	require.NoError(t, err)
	require.True(t, ext.Draft)
	require.Equal(t, int64(42), ext.ID)
}

func TestParseExternalID_NumberOnly(t *testing.T) {
	t.Parallel()

	ext, err := ParseExternalID("q7")
	require.NoError(t, err)
	require.False(t, ext.Draft)
	require.Equal(t, int64(7), ext.Number)
	require.Nil(t, ext.Version)
}

func TestParseExternalID_NumberAndVersion(t *testing.T) {
	t.Parallel()

	ext, err := ParseExternalID("q7v3")
	require.NoError(t, err)
	require.Equal(t, int64(7), ext.Number)
	require.NotNil(t, ext.Version)
	require.EqualValues(t, 3, *ext.Version)
}

// Недоверенные формы: отказ без запасного пути.
func TestParseExternalID_Untrusted(t *testing.T) {
	t.Parallel()

	for _, param := range []string{
		"",
		"q",
		"d",
		"7",
		"x7",
		"q7x",
		"q7v",
		"qv3",
		"d7v3",
		"q7v3x",
		"q 7",
		"q7 ",
		" q7",
		"Q7V3",
		"d-7",
		"q-7v3",
		"q7v-3",
		"q7.5",
	} {
		_, err := ParseExternalID(param)
		require.ErrorIs(t, err, ErrUntrustedExternalID, "param=%q", param)
	}
}

func TestFormatExternalID_RoundTrip(t *testing.T) {
	t.Parallel()

	v := int32(3)
	published := &Question{ID: 10, Number: 7, Version: &v}
	require.Equal(t, "q7v3", FormatExternalID(published))

	draft := &Question{ID: 42}
	require.Equal(t, "d42", FormatExternalID(draft))

	ext, err := ParseExternalID(FormatExternalID(published))
	require.NoError(t, err)
	require.Equal(t, int64(7), ext.Number)
	require.EqualValues(t, 3, *ext.Version)

	ext, err = ParseExternalID(FormatExternalID(draft))
	require.NoError(t, err)
	require.True(t, ext.Draft)
	require.Equal(t, int64(42), ext.ID)
}
