// Package fs issues descriptor system calls directly: open, read, write, pipe, ioctl and close.
//
// Descriptors are never tracked or closed on the caller's behalf. Every call maps to exactly one
// system call, and read and write are not retried after a short transfer.
package fs
