//go:build !meshfunc_nochecks

// SPDX-License-Identifier: MIT

package meshfunc

// checksEnabled turns on precondition validation on every access.
// Build with -tags meshfunc_nochecks to compile the checks out.
const checksEnabled = true
