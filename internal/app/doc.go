// Package app loads clikv configuration and wires the dependencies commands
// use.
//
// LoadConfig merges flags, environment variables, an optional config file and
// defaults through viper. NewWire turns the validated Config into a storage
// opener, a clipboard, a color painter and a logger, exposed via Wire.
package app
