/*
 * Arbor
 *
 * Copyright 2026 The Arbor Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

/*
Logger is the external object to which the interpreter's collaborators (the
REPL) release their log messages; the evaluator itself does not log.
*/
type Logger interface {

	/*
		LogError adds a new error log message.
	*/
	LogError(v ...interface{})

	/*
		LogInfo adds a new info log message.
	*/
	LogInfo(v ...interface{})

	/*
		LogDebug adds a new debug log message.
	*/
	LogDebug(v ...interface{})
}
