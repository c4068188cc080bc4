package config

// DefaultWorkspaceRoot is the workspace root used when none is configured.
const DefaultWorkspaceRoot = "~/dev"

// GroupNames lists the repository groups in the order composite actions
// process them.
var GroupNames = []string{"shell", "editor", "terminal", "projects"}

// DefaultConfig returns the built-in curated configuration. It is the
// configuration surface: edit it directly, or override it with a
// bootstrap.yml / repos.toml found by LoadDefault.
func DefaultConfig() *Config {
	return &Config{
		Version:       "1.0",
		WorkspaceRoot: DefaultWorkspaceRoot,
		Tree: map[string]string{
			"env":      "env",
			"shell":    "env/shell",
			"editor":   "env/editor",
			"terminal": "env/terminal",
			"project":  "project",
			"packages": "project/packages",
			"sandbox":  "project/sandbox",
			"tools":    "tools",
		},
		Groups: map[string]RepoGroup{
			"shell": {
				"env/shell/shell-env": "git@github.com:juicer149/shell-env.git",
			},
			"editor": {
				"env/editor/nvim": "git@github.com:juicer149/nvim-config.git",
			},
			"terminal": {
				"env/terminal/wezterm": "git@github.com:juicer149/wezterm-config.git",
				"env/terminal/tmux":    "git@github.com:juicer149/tmux-config.git",
				"env/terminal/ai":      "git@github.com:juicer149/ai-env.git",
			},
			"projects": {
				"project/packages/curate":    "git@github.com:juicer149/curate.git",
				"project/packages/architech": "git@github.com:juicer149/architech.git",
			},
		},
	}
}
