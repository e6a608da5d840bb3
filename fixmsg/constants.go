// constants.go
package fixmsg

// Wire-format bytes.
const (
	// SOH is the standard FIX field terminator.
	SOH = byte(0x01)

	equalsByte = byte('=')
)

// Tags with protocol-mandated positions in an encoded message.
const (
	TagBeginString = 8
	TagBodyLength  = 9
	TagChecksum    = 10
	TagMsgType     = 35
)
