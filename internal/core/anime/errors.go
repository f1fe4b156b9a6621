// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package anime

import "errors"

// errUnchanged aborts an update cycle that has nothing to write.
var errUnchanged = errors.New("anime: document unchanged")
