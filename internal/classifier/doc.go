// Package classifier talks to the remote text classification service.
// It posts text to the /predict endpoint and decodes the verdict, mapping
// every failure onto the transport/service error taxonomy in common.
package classifier
