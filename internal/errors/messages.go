package errors

import "fmt"

// NotARepository is returned when the target path has no git repository.
func NotARepository(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("%s is not inside a git repository", path),
		"Run the command from inside a git work tree",
		"Or point at one with --repo <path>",
	)
}

// InvalidVariant is returned for an unknown --variant value.
func InvalidVariant(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid variant: %q", provided),
		"chglog-uae generate --variant refined|simple",
		"Use 'refined' for the marker-aware preset or 'simple' for the plain one",
	)
}

// InvalidOutputFormat is returned for an unknown --output value.
func InvalidOutputFormat(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid output format: %q", provided),
		"chglog-uae bump --output text|yaml|json",
	)
}

// NegativeReleaseCount is returned when --release-count is below zero.
func NegativeReleaseCount(n int) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("release count must be zero or positive, got %d", n),
		"Use 0 to regenerate the whole changelog",
		"Use 1 (default) to render only the newest release",
	)
}

// SameFileWithoutInfile is returned when --same-file has nothing to overwrite.
func SameFileWithoutInfile() *CLIError {
	return NewArgumentError(
		"--same-file requires an infile",
		"Pass --infile CHANGELOG.md or set 'infile' in .chglog-uae.yml",
	)
}

// ConfigInvalid wraps a configuration load or validation failure.
func ConfigInvalid(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"Check .chglog-uae.yml and ~/.config/chglog-uae/config.yml",
		"Check CHGLOG_UAE_* environment variables",
	)
}

// TemplateLoadFailed wraps a template read failure.
func TemplateLoadFailed(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		"failed to load templates",
		"Check that templates_dir exists and its .tmpl files are readable",
		"Remove templates_dir to use the built-in templates",
	)
}

// HistoryReadFailed wraps a failure to read tags or commits.
func HistoryReadFailed(err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		"failed to read git history",
		"Verify the repository is not corrupt: git fsck",
	)
}

// OutputWriteFailed wraps a failure to write the changelog or a config file.
func OutputWriteFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("failed to write %s", path),
		"Check file permissions and available disk space",
	)
}
