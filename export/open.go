package export

import (
	"os"
	"os/exec"
)

// editorCommand returns the user's preferred editor, or empty.
func editorCommand() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// OpenURL opens a URL in the default browser. xdg-open is tried first,
// then sensible-browser. Callers should log a failure, not treat it as
// fatal.
func OpenURL(url string) error {
	if err := exec.Command("xdg-open", url).Start(); err == nil {
		return nil
	}
	return exec.Command("sensible-browser", url).Start()
}

// OpenFile launches the platform's default handler on a local file,
// used for the raw CSV source and for generated notes. Falls back to
// $EDITOR when xdg-open is unavailable.
func OpenFile(path string) error {
	err := exec.Command("xdg-open", path).Start()
	if err == nil {
		return nil
	}
	if editor := editorCommand(); editor != "" {
		return exec.Command(editor, path).Start()
	}
	return err
}
