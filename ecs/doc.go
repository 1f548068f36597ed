// Package ecs provides ECS adapters for easel's invalidation events.
//
// The primary adapter is [NewDonburiStore], which bridges every invalidation
// in a scene's tree into a [Donburi] world as typed events. Subscribe to
// [InvalidationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
