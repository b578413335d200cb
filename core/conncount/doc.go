// Package conncount provides a concurrent connection counter with wait-for-zero support.
//
// The counter is updated from connection accept/close events and read by the
// shutdown sequence, which waits for in-flight connections to drain:
//
//	counter := conncount.New()
//
//	srv := &http.Server{
//		ConnState: func(c net.Conn, state http.ConnState) {
//			switch state {
//			case http.StateNew:
//				counter.Increment()
//			case http.StateClosed, http.StateHijacked:
//				counter.Decrement()
//			}
//		},
//	}
//
//	// During shutdown
//	if !counter.AwaitZero(20 * time.Second) {
//		log.Error("connections still open", "count", counter.Count())
//	}
//
// Increment and Decrement use atomic operations. The zero signal is a channel
// that is closed while no connections are open, so waiting never busy-loops.
package conncount
