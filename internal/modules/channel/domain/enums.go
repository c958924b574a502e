//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// ChatKind represents the kind of managed chat
// ENUM(channel,group,supergroup)
type ChatKind string

// RuleStatus represents the on/off state of an automation rule
// ENUM(active,inactive)
type RuleStatus string

// WatermarkKind represents the content type of a watermark
// ENUM(text,image,animation)
type WatermarkKind string

// Position represents a slot of the 9-point watermark placement grid
// ENUM(top_left,top_center,top_right,mid_left,center,mid_right,bottom_left,bottom_center,bottom_right)
type Position string

// Effect represents a watermark motion effect (video only)
// ENUM(none,scroll_left,scroll_right,scroll_up,scroll_down,fade,pulse,wave,move_diagonal_dr,move_diagonal_dl,move_diagonal_ur,move_diagonal_ul)
type Effect string

// Color represents a named watermark text color
// ENUM(white,black,red,blue,green,yellow,cyan,magenta,orange,purple)
type Color string
