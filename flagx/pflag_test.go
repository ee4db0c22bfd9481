package flagx

import (
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFlagSet_AddToPFlagSet(t *testing.T) {
	fs := NewFlagSet("test")
	name := fs.String("name", true, "", "A name")
	verbose := fs.Bool("verbose", true, false, "Verbose output")
	fields := fs.IntList("fields", true, nil, "Fields to select")
	b := fs.Bool("b", false, false, "Single character")

	pfs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.AddToPFlagSet(pfs)
	require.NoError(t, pfs.Parse([]string{"-v", "--name", "x", "-f", "1,2", "-b", "rest"}))

	assert.True(t, *verbose)
	assert.Equal(t, "x", *name)
	assert.Equal(t, []int{1, 2}, *fields)
	assert.True(t, *b)
	assert.Equal(t, []string{"rest"}, pfs.Args())
	assert.True(t, pfs.Changed("name"))
	assert.False(t, fs.Changed("name"), "Parsing through pflag doesn't update this flag set")
	assert.Contains(t, pfs.FlagUsages(), "--fields ints")
}

func TestFlagSet_AddToPFlagSet_Conflicts(t *testing.T) {
	fs := NewFlagSet("test")
	fs.String("name", false, "", "")
	fs.Bool("verbose", true, false, "")
	fs.Bool("über", true, false, "")

	pfs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	other := pfs.String("name", "other", "")
	pfs.BoolP("version", "v", false, "")
	fs.AddToPFlagSet(pfs)

	require.NoError(t, pfs.Parse([]string{"--name", "value"}))
	assert.Equal(t, "value", *other, "Existing pflag definitions take precedence")

	verbose := pfs.Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Empty(t, verbose.Shorthand, "A shorthand used by pflag should be dropped")
	assert.Equal(t, "true", verbose.NoOptDefVal)

	uber := pfs.Lookup("über")
	require.NotNil(t, uber)
	assert.Empty(t, uber.Shorthand, "Multi-byte shorthands aren't supported by pflag")
}

func TestFlagSet_AddToPFlagSet_OnlyBoolIsValueless(t *testing.T) {
	fs := NewFlagSet("test")
	mode := fs.String("mode", false, "false", "")
	pfs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.AddToPFlagSet(pfs)

	assert.Empty(t, pfs.Lookup("mode").NoOptDefVal, "Only boolean flags are value-less in pflag")
	require.NoError(t, pfs.Parse([]string{"--mode", "fast"}))
	assert.Equal(t, "fast", *mode)

	require.NoError(t, fs.Set("mode", "false"))
	require.NoError(t, fs.Parse([]string{"--mode", "fast"}))
	assert.Equal(t, "true", *mode, "Parse activates anything that renders as a boolean")
	assert.Equal(t, []string{"fast"}, fs.Args())
}
