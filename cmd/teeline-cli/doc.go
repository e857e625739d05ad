// Package main provides the entry point for teeline-cli.
//
// teeline-cli signs in to the Teeline service, browses lessons and games,
// awards points and runs the client-side validation rules:
//
//	teeline-cli login jared
//	teeline-cli -o json games
//	teeline-cli -u jared --password secret points add 25
//	teeline-cli validate email jared@mail.com
//
// Sessions live in process memory only. Run without a command, or with
// "shell", for an interactive session that keeps the login.
package main
