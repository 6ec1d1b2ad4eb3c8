// Package loop runs the real-time game loop: a timer-driven cycle that
// polls player input, steps the engine, records statistics, renders,
// and fans snapshots out to observers such as the websocket hub.
package loop
