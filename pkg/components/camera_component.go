package components

// CameraComponent 视口在世界坐标中的左下角
// 视口大小固定为逻辑屏幕大小，关卡加载时回到原点
type CameraComponent struct {
	ViewLeft   float64
	ViewBottom float64
}
