package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omatheusmesmo/checksignals/internal/report"
	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

type rootOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// prepareRoot resets the root command and points it at dir.
func prepareRoot(t *testing.T, dir string, args ...string) *rootOutput {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("NO_COLOR", "1")
	t.Setenv(checksignals.RootEnvVar, "")
	resetCheckFlags()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)

	if args == nil {
		args = []string{} // nil would make cobra parse the test binary's own flags
	}

	out := &rootOutput{}
	rootCmd.SetOut(&out.stdout)
	rootCmd.SetErr(&out.stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	return out
}

// runRoot executes the root command in dir with args and returns its output.
func runRoot(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	out := prepareRoot(t, dir, args...)
	err := rootCmd.Execute()
	return out.stdout.String(), out.stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func appPath(parts ...string) string {
	return filepath.Join(append([]string{"src", "app"}, parts...)...)
}

func TestRootCmd_ArgsValidation_TooMany(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, checksignals.ExitUsageError, checksignals.ExitCodeForError(err))
}

func TestRootCmd_ArgsValidation_NoneIsFine(t *testing.T) {
	assert.NoError(t, rootCmd.Args(rootCmd, []string{}))
}

func TestRunCheck_InfoOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, appPath("foo.component.ts")), `@Component({
  changeDetection: ChangeDetectionStrategy.OnPush,
})
export class Foo {}`)

	stdout, stderr, err := runRoot(t, dir)
	require.NoError(t, err)

	assert.Equal(t,
		"[INFO] Component Foo ("+appPath("foo.component.ts")+") does not appear to use Signals. Consider migrating state management to Signals.\n"+
			"Custom lint check completed.\n",
		stdout)
	assert.Empty(t, stderr)
}

func TestRunCheck_WarningOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, appPath("x.ts")), "@Component({}) const c = signal(0);")

	stdout, stderr, err := runRoot(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "Custom lint check completed.\n", stdout)
	assert.Equal(t,
		"[WARNING] Component UnknownComponent ("+appPath("x.ts")+") is NOT using OnPush change detection.\n",
		stderr)
}

func TestRunCheck_NonTSFileProducesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, appPath("foo.component.html")), "@Component")

	stdout, stderr, err := runRoot(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "Custom lint check completed.\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunCheck_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "app"), 0755))

	stdout, stderr, err := runRoot(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "Custom lint check completed.\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunCheck_FindingsDoNotFail(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeFile(t, filepath.Join(dir, appPath(name+".component.ts")), "@Component({}) class "+strings.ToUpper(name)+" {}")
	}

	stdout, stderr, err := runRoot(t, dir)
	require.NoError(t, err)
	assert.Equal(t, checksignals.ExitSuccess, checksignals.ExitCodeForError(err))

	assert.Equal(t, 3, strings.Count(stderr, "[WARNING]"))
	assert.Equal(t, 3, strings.Count(stdout, "[INFO]"))
	assert.Equal(t, 1, strings.Count(stdout, checksignals.CompletionMessage))
	assert.True(t, strings.HasSuffix(stdout, checksignals.CompletionMessage+"\n"))
}

func TestRunCheck_MissingRootFails(t *testing.T) {
	stdout, stderr, err := runRoot(t, t.TempDir())
	require.Error(t, err)

	assert.ErrorIs(t, err, checksignals.ErrSourceNotFound)
	assert.Equal(t, checksignals.ExitGeneralError, checksignals.ExitCodeForError(err))
	assert.NotContains(t, stdout, checksignals.CompletionMessage)
	assert.Contains(t, stderr, "Error:")
}

func TestRunCheck_PositionalRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "web", "a.ts"), "@Component({}) class A {} signal( ChangeDetectionStrategy.OnPush")
	writeFile(t, filepath.Join(dir, "web", "b.ts"), "@Component({}) class B {} signal(")

	stdout, stderr, err := runRoot(t, dir, "web")
	require.NoError(t, err)

	assert.Equal(t, "Custom lint check completed.\n", stdout)
	assert.Equal(t, "[WARNING] Component B ("+filepath.Join("web", "b.ts")+") is NOT using OnPush change detection.\n", stderr)
}

func TestRunCheck_ExtensionFlag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, appPath("a.component.ts")), "@Component({}) class A {} signal(")
	writeFile(t, filepath.Join(dir, appPath("a.service.ts")), "@Component({}) class S {} signal(")

	_, stderr, err := runRoot(t, dir, "--extension", ".component.ts")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Component A")
	assert.NotContains(t, stderr, "Component S")
}

func TestRunCheck_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "check-signals.yaml"), `root: client
rules:
  signal_apis: ["toSignal("]
`)
	writeFile(t, filepath.Join(dir, "client", "a.ts"), "@Component({}) class A { v = signal(1); } ChangeDetectionStrategy.OnPush")

	stdout, _, err := runRoot(t, dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "[INFO] Component A ("+filepath.Join("client", "a.ts")+")")
}

func TestRunCheck_ExplicitConfigMissing(t *testing.T) {
	_, _, err := runRoot(t, t.TempDir(), "--config", "nope.yaml")
	require.Error(t, err)

	assert.ErrorIs(t, err, checksignals.ErrInvalidConfig)
	assert.Equal(t, checksignals.ExitConfigError, checksignals.ExitCodeForError(err))
}

func TestRunCheck_InvalidConfigValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "check-signals.yaml"), "rules:\n  name_pattern: \"(\"\n")

	_, _, err := runRoot(t, dir)
	assert.ErrorIs(t, err, checksignals.ErrInvalidConfig)
}

func TestRunCheck_EnvRootFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), checksignals.RootEnvVar+"=frontend\n")
	writeFile(t, filepath.Join(dir, "frontend", "a.ts"), "@Component({}) class A {} signal(")

	out := prepareRoot(t, dir)
	require.NoError(t, os.Unsetenv(checksignals.RootEnvVar))

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.stderr.String(), "Component A ("+filepath.Join("frontend", "a.ts")+")")
}

func TestRunCheck_Verbose(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, appPath("readme.md")), "")

	_, stderr, err := runRoot(t, dir, "-v")
	require.NoError(t, err)

	assert.Contains(t, stderr, "[VERBOSE] Settings resolved:")
	assert.Contains(t, stderr, "[VERBOSE]   Root: src/app")
	assert.Contains(t, stderr, "[VERBOSE] Skipping "+appPath("readme.md"))
}

func TestRunCheck_KeepGoing(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, appPath("locked.component.ts"))
	writeFile(t, locked, "@Component({}) class Locked {}")
	require.NoError(t, os.Chmod(locked, 0))
	writeFile(t, filepath.Join(dir, appPath("z.component.ts")), "@Component({}) class Z {}")

	stdout, stderr, err := runRoot(t, dir, "--keep-going")
	require.Error(t, err)

	assert.ErrorIs(t, err, checksignals.ErrReadFailed)
	assert.Contains(t, stderr, "[ERROR] read failed")
	assert.Contains(t, stderr, "Component Z")
	assert.True(t, strings.HasSuffix(stdout, checksignals.CompletionMessage+"\n"))
}

func TestRunCheck_UnreadableFileAborts(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, appPath("a.component.ts"))
	writeFile(t, locked, "@Component({}) class A {}")
	require.NoError(t, os.Chmod(locked, 0))
	writeFile(t, filepath.Join(dir, appPath("z.component.ts")), "@Component({}) class Z {}")

	stdout, stderr, err := runRoot(t, dir)
	require.Error(t, err)

	assert.ErrorIs(t, err, checksignals.ErrReadFailed)
	assert.NotContains(t, stderr, "Component Z")
	assert.NotContains(t, stdout, checksignals.CompletionMessage)
}

func TestRunCheck_KeepGoingFlagOverridesConfig(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		wantK string
	}{
		{"config alone", []string{"-v"}, "Keep going: true"},
		{"flag switches it off", []string{"-v", "--keep-going=false"}, "Keep going: false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "check-signals.yaml"), "keep_going: true\n")
			writeFile(t, filepath.Join(dir, appPath("a.ts")), "")

			_, stderr, err := runRoot(t, dir, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, stderr, "[VERBOSE]   "+tt.wantK)
		})
	}
}

func TestRunCheck_FollowsSymlinkedDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shared", "shared.component.ts"), "@Component({}) class Shared {}")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appPath()), 0755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "shared"), filepath.Join(dir, appPath("shared"))))

	stdout, stderr, err := runRoot(t, dir)
	require.NoError(t, err)

	wantPath := appPath("shared", "shared.component.ts")
	assert.Contains(t, stderr, "[WARNING] Component Shared ("+wantPath+")")
	assert.Contains(t, stdout, "[INFO] Component Shared ("+wantPath+")")
	assert.True(t, strings.HasSuffix(stdout, checksignals.CompletionMessage+"\n"))
}

func TestFinishScan(t *testing.T) {
	recorded := errors.New("read failed: a.ts")
	aborted := errors.New("walk callback panicked at b.ts: boom")

	tests := []struct {
		name          string
		result        checksignals.ScanResult
		err           error
		wantCompleted int
		wantErr       string
	}{
		{
			name:          "clean walk",
			result:        checksignals.ScanResult{Complete: true},
			wantCompleted: 1,
		},
		{
			name:          "walk finished with recorded errors",
			result:        checksignals.ScanResult{Complete: true, Errors: []error{recorded}},
			err:           recorded,
			wantCompleted: 1,
			wantErr:       "scan src/app finished with 1 error(s): read failed: a.ts",
		},
		{
			name:    "aborted after recorded errors",
			result:  checksignals.ScanResult{Errors: []error{recorded}},
			err:     aborted,
			wantErr: "scan src/app: walk callback panicked at b.ts: boom",
		},
		{
			name:    "aborted on first error",
			err:     recorded,
			wantErr: "scan src/app: read failed: a.ts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := report.NewCollector()
			err := finishScan(c, "src/app", tt.result, tt.err)

			assert.Equal(t, tt.wantCompleted, c.Completed())
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
