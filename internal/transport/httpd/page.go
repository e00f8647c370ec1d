package httpd

import "io"

// remotePage is the static control page served to every client. Framing is
// connection-close: no Content-Length, one response per connection.
const remotePage = `<!DOCTYPE html>
<html>
<head>
<title>keydeck remote</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
<h1>keydeck remote</h1>
<p><a href="/cmd_terminal">Open Terminal</a></p>
<p><a href="/cmd_lock">Lock Screen</a></p>
<p><a href="/cmd_run">Run Dialog</a></p>
<p><a href="/cmd_home">Home</a></p>
<p><a href="/cmd_back">Back</a></p>
<p><a href="/cmd_apps">Recent Apps</a></p>
</body>
</html>
`

const responseHeader = "HTTP/1.1 200 OK\r\n" +
	"Content-type: text/html\r\n" +
	"Connection: close\r\n" +
	"\r\n"

// writePage writes the fixed 200 response followed by the control page.
func writePage(w io.Writer) error {
	if _, err := io.WriteString(w, responseHeader); err != nil {
		return err
	}
	_, err := io.WriteString(w, remotePage)
	return err
}
