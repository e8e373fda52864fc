package airwaybill

import "go.uber.org/fx"

// Module provides the airway bill generator.
var Module = fx.Provide(func() *Generator { return NewGenerator(Options{}) })
