package game

import "errors"

// ErrNoSceneFactory Load 之前没有设置场景工厂
var ErrNoSceneFactory = errors.New("scene factory not set")
