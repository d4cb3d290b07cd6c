// CSV thruster wire format (rover -> ESC bridge board):
//
//	MTR,CHANNEL,POWER
//
// The board acknowledges each line with "ACK,MTR".
package parser

import (
	"fmt"
	"strings"
)

// ThrusterToCSV converts one channel power command into its CSV wire line.
func ThrusterToCSV(channel string, power float64) string {
	return fmt.Sprintf("MTR,%s,%.2f", channel, power)
}

// IsAck reports whether a line received from the board acknowledges a
// previous MTR command.
func IsAck(line string) bool {
	fields := strings.Split(strings.TrimSpace(line), ",")
	return len(fields) >= 2 && fields[0] == "ACK" && fields[1] == "MTR"
}
