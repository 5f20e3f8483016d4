// Package internal contains the SDL runtime behind herodeck: window, fonts,
// input processing, theming and logging.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
