// Package codec provides ready-made custom transforms for Node.Custom:
// string-to-domain conversions (durations, RFC3339 timestamps) and small
// string normalizers. Each transform fails with a plain error whose text
// becomes the issue message.
package codec
