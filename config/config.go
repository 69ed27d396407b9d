/*
 * Arbor
 *
 * Copyright 2026 The Arbor Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of Arbor
*/
const ProductVersion = "0.1.0"

/*
Known configuration options for Arbor
*/
const (
	// MissingNamePolicy controls what happens when an identifier is looked
	// up and no binding exists in any enclosing scope. "null" is the
	// default (resolve to Null); "strict" surfaces a NameError instead.
	MissingNamePolicy = "MissingNamePolicy"
)

/*
DefaultConfig is the default configuration
*/
var DefaultConfig = map[string]interface{}{
	MissingNamePolicy: "null",
}

/*
Config is the actual config which is used
*/
var Config map[string]interface{}

/*
Initialise the config
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}

/*
StrictNames reports whether the strict missing-name policy is active.
*/
func StrictNames() bool {
	return Str(MissingNamePolicy) == "strict"
}
