// Package bib loads citation databases from YAML bibliography files.
//
// A bibliography file is a mapping from entry key to entry fields:
//
//	rowling:
//	  type: book
//	  title: Harry Potter and the Order of the Phoenix
//	  author: Rowling, J. K.
//	  date: 2003-06-21
//	  publisher: Bloomsbury
//
//	wwdc-network:
//	  type: web
//	  title: Boost Performance and Security with Modern Networking
//	  author: [Jorgensen, Eric, Schinazi, David]
//	  date: 2020
//	  url: https://developer.apple.com/videos/play/wwdc2020/10111/
//
// Files are validated against a JSON Schema before binding, so malformed
// databases fail with a *ValidationError instead of binding partially.
// Entry order in the file is preserved in Database.Keys.
package bib
