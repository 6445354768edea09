// meta/meta.go
package meta

import "time"

// DEFAULT_DEPTH is the ply depth the computer searches.
const DEFAULT_DEPTH = 5

// START_MIN and START_MAX bound the random start number.
const START_MIN = 20000

const START_MAX = 30000

// AI_DELAY paces the computer's reply in interactive play.
const AI_DELAY = 500 * time.Millisecond

// LISTEN_ADDR is where the local API binds.
const LISTEN_ADDR = "127.0.0.1:8080"
