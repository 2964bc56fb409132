package shell

// GetProfileSnippet returns the line to add to a shell profile so that new
// sessions pick up the workspace environment. The snippet is a no-op when
// ampenv is not on PATH.
func GetProfileSnippet(shell string) string {
	switch shell {
	case "fish":
		return `type -q ampenv; and ampenv init --shell fish | source`
	default:
		return `command -v ampenv >/dev/null && eval "$(ampenv init)"`
	}
}
