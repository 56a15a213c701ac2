// SPDX-License-Identifier: EPL-2.0

// Package stream ships monitor readings off the process.
//
// Publisher sends them to NATS under a subject prefix:
//
//	<prefix>.reading  JSON heart.Reading for every accepted sample
//	<prefix>.beat     JSON Beat whenever a beat fires
//	<prefix>.wave     little-endian float32 batches of the normalized waveform
//
// Hub pushes readings to browsers over websockets, and Relay feeds a Hub
// from a NATS subject so the display can run on another host than the
// sensor.
package stream
