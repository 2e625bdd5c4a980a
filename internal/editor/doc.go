// Package editor coordinates one view onto a shared document.
//
// An Editor owns the view's EditModel, ViewStyle and KeyMap and watches the
// document so that selections, fold state and the selection history follow
// every modification, including ones made through other views.
//
//	ed := editor.New(editor.WithDocument(doc))
//	defer ed.Close()
//
//	_ = ed.InsertText("hello")
//	ed.Undo()
//
// All methods must be called on the document's editing goroutine.
package editor
