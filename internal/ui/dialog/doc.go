// Package dialog holds the state of the shell's settings dialogs: the
// address entry form, autofill settings, the homepage picker and the zoom
// level manager. Models are confined to the UI thread and talk to storage
// through the application use cases.
package dialog
