package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyDir        = "dir"
	KeyFile       = "file"
	KeyDocs       = "docs"
	KeyOutput     = "output"
	KeyKind       = "kind"
	KeyCount      = "count"
	KeyPort       = "port"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyRemoteAddr = "remote_addr"
	KeyUserAgent  = "user_agent"
	KeyRequestID  = "request_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Dir(d string) slog.Attr        { return slog.String(KeyDir, d) }
func File(f string) slog.Attr       { return slog.String(KeyFile, f) }
func Docs(d string) slog.Attr       { return slog.String(KeyDocs, d) }
func Output(o string) slog.Attr     { return slog.String(KeyOutput, o) }
func Kind(k string) slog.Attr       { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Port(p int) slog.Attr          { return slog.Int(KeyPort, p) }
func Method(m string) slog.Attr     { return slog.String(KeyMethod, m) }
func Status(s int) slog.Attr        { return slog.Int(KeyStatus, s) }
func RemoteAddr(a string) slog.Attr { return slog.String(KeyRemoteAddr, a) }
func UserAgent(a string) slog.Attr  { return slog.String(KeyUserAgent, a) }
func RequestID(id string) slog.Attr { return slog.String(KeyRequestID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
