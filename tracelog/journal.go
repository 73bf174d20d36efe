package tracelog

import "os"

// runningUnderJournal reports whether the process writes to the systemd
// journal. systemd sets JOURNAL_STREAM for services whose output it
// captures.
func runningUnderJournal() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// journalPrefix returns the syslog priority prefix the journal parses in
// place of a text label. Levels outside the message range get none.
func journalPrefix(level Level) string {
	switch level {
	case LevelTrace, LevelDebug:
		return "<7>"
	case LevelInfo:
		return "<6>"
	case LevelWarning:
		return "<4>"
	case LevelError:
		return "<3>"
	case LevelFatal:
		return "<2>"
	default:
		return ""
	}
}
