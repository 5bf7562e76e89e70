// Package hap implements the IP transport lifecycle that ties the
// accessory database, event emitter, mDNS advertisement, and HTTP
// server together.
package hap
