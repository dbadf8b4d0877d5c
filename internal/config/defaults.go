package config

// GetDefaultConfigTemplate returns a commented project config template.
func GetDefaultConfigTemplate() string {
	return `# chglog-uae configuration

variant: refined              # refined | simple
routing: ""                   # release_count | version (empty = variant default)
release_count: 1              # newest releases to render (0 = regenerate all)
release_version: ""           # label for commits above the newest release
infile: CHANGELOG.md          # file to prepend to
same_file: false              # write the result back into infile

host: https://github.com      # used for @mention and issue links
owner: ""
repository: ""
repo_url: ""                  # used when owner/repository are not set

templates_dir: ""             # overrides template.tmpl, header.tmpl, commit.tmpl, footer.tmpl

log_level: warn               # trace | debug | info | warn | error | off
log_format: console           # console | json
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"variant":         "refined",
		"routing":         "",
		"release_count":   1,
		"release_version": "",
		"infile":          "CHANGELOG.md",
		"same_file":       false,
		"host":            "https://github.com",
		"owner":           "",
		"repository":      "",
		"repo_url":        "",
		"templates_dir":   "",
		"log_level":       "warn",
		"log_format":      "console",
	}
}
