//go:build meshfunc_nochecks

// SPDX-License-Identifier: MIT

package meshfunc

// checksEnabled is false in release builds: access preconditions are the
// caller's responsibility and are not validated.
const checksEnabled = false
