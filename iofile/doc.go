// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package iofile provides small whole-file read/write/append helpers; the
// programs under cmd/ do not use it. Spec.md names a "file read/write helper"
// as a library leaf; no dedicated teacher file exists for it, so this is
// assembled from the plain os/io idiom used throughout the rest of the
// teacher tree rather than grounded on one specific file.
package iofile
