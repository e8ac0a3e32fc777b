package gl

import "unsafe"

func CullFace(mode uint32) {
	procCullFace.Call(uintptr(mode))
}

func FrontFace(mode uint32) {
	procFrontFace.Call(uintptr(mode))
}

func Hint(target, mode uint32) {
	procHint.Call(uintptr(target), uintptr(mode))
}

func LineWidth(width float32) {
	procLineWidth.Call(f32(width))
}

func PointSize(size float32) {
	procPointSize.Call(f32(size))
}

func PolygonMode(face, mode uint32) {
	procPolygonMode.Call(uintptr(face), uintptr(mode))
}

func Scissor(x, y, width, height int32) {
	procScissor.Call(uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func TexParameterf(target, pname uint32, param float32) {
	procTexParameterf.Call(uintptr(target), uintptr(pname), f32(param))
}

func TexParameterfv(target, pname uint32, params *float32) {
	procTexParameterfv.Call(uintptr(target), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func TexParameteri(target, pname uint32, param int32) {
	procTexParameteri.Call(uintptr(target), uintptr(pname), uintptr(param))
}

func TexParameteriv(target, pname uint32, params *int32) {
	procTexParameteriv.Call(uintptr(target), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func TexImage1D(target uint32, level, internalformat, width, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	procTexImage1D.Call(uintptr(target), uintptr(level), uintptr(internalformat), uintptr(width), uintptr(border), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	procTexImage2D.Call(uintptr(target), uintptr(level), uintptr(internalformat), uintptr(width), uintptr(height), uintptr(border), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func DrawBuffer(buf uint32) {
	procDrawBuffer.Call(uintptr(buf))
}

func Clear(mask uint32) {
	procClear.Call(uintptr(mask))
}

func ClearColor(red, green, blue, alpha float32) {
	procClearColor.Call(f32(red), f32(green), f32(blue), f32(alpha))
}

func ClearStencil(s int32) {
	procClearStencil.Call(uintptr(s))
}

func ClearDepth(depth float64) {
	procClearDepth.Call(f64(depth))
}

func StencilMask(mask uint32) {
	procStencilMask.Call(uintptr(mask))
}

func ColorMask(red, green, blue, alpha bool) {
	procColorMask.Call(glBool(red), glBool(green), glBool(blue), glBool(alpha))
}

func DepthMask(flag bool) {
	procDepthMask.Call(glBool(flag))
}

func Disable(capability uint32) {
	procDisable.Call(uintptr(capability))
}

func Enable(capability uint32) {
	procEnable.Call(uintptr(capability))
}

func Finish() {
	procFinish.Call()
}

func Flush() {
	procFlush.Call()
}

func BlendFunc(sfactor, dfactor uint32) {
	procBlendFunc.Call(uintptr(sfactor), uintptr(dfactor))
}

func LogicOp(opcode uint32) {
	procLogicOp.Call(uintptr(opcode))
}

func StencilFunc(xfunc uint32, ref int32, mask uint32) {
	procStencilFunc.Call(uintptr(xfunc), uintptr(ref), uintptr(mask))
}

func StencilOp(fail, zfail, zpass uint32) {
	procStencilOp.Call(uintptr(fail), uintptr(zfail), uintptr(zpass))
}

func DepthFunc(xfunc uint32) {
	procDepthFunc.Call(uintptr(xfunc))
}

func PixelStoref(pname uint32, param float32) {
	procPixelStoref.Call(uintptr(pname), f32(param))
}

func PixelStorei(pname uint32, param int32) {
	procPixelStorei.Call(uintptr(pname), uintptr(param))
}

func ReadBuffer(src uint32) {
	procReadBuffer.Call(uintptr(src))
}

func ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	procReadPixels.Call(uintptr(x), uintptr(y), uintptr(width), uintptr(height), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func GetBooleanv(pname uint32, data *bool) {
	procGetBooleanv.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func GetDoublev(pname uint32, data *float64) {
	procGetDoublev.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func GetError() uint32 {
	r1, _ := procGetError.Call()
	return uint32(r1)
}

func GetFloatv(pname uint32, data *float32) {
	procGetFloatv.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func GetIntegerv(pname uint32, data *int32) {
	procGetIntegerv.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

// GetString returns a driver-owned string; convert with GoStr.
func GetString(name uint32) *uint8 {
	r1, _ := procGetString.Call(uintptr(name))
	return (*uint8)(unsafe.Pointer(r1))
}

func GetTexImage(target uint32, level int32, format, xtype uint32, pixels unsafe.Pointer) {
	procGetTexImage.Call(uintptr(target), uintptr(level), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func GetTexParameterfv(target, pname uint32, params *float32) {
	procGetTexParameterfv.Call(uintptr(target), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func GetTexParameteriv(target, pname uint32, params *int32) {
	procGetTexParameteriv.Call(uintptr(target), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func GetTexLevelParameterfv(target uint32, level int32, pname uint32, params *float32) {
	procGetTexLevelParameterfv.Call(uintptr(target), uintptr(level), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func GetTexLevelParameteriv(target uint32, level int32, pname uint32, params *int32) {
	procGetTexLevelParameteriv.Call(uintptr(target), uintptr(level), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func IsEnabled(capability uint32) bool {
	r1, _ := procIsEnabled.Call(uintptr(capability))
	return r1 == TRUE
}

func DepthRange(near, far float64) {
	procDepthRange.Call(f64(near), f64(far))
}

func Viewport(x, y, width, height int32) {
	procViewport.Call(uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func DrawArrays(mode uint32, first, count int32) {
	procDrawArrays.Call(uintptr(mode), uintptr(first), uintptr(count))
}

func DrawElements(mode uint32, count int32, xtype uint32, indices unsafe.Pointer) {
	procDrawElements.Call(uintptr(mode), uintptr(count), uintptr(xtype), uintptr(indices))
}

func GetPointerv(pname uint32, params *unsafe.Pointer) {
	procGetPointerv.Call(uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func PolygonOffset(factor, units float32) {
	procPolygonOffset.Call(f32(factor), f32(units))
}

func CopyTexImage1D(target uint32, level int32, internalformat uint32, x, y, width, border int32) {
	procCopyTexImage1D.Call(uintptr(target), uintptr(level), uintptr(internalformat), uintptr(x), uintptr(y), uintptr(width), uintptr(border))
}

func CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, width, height, border int32) {
	procCopyTexImage2D.Call(uintptr(target), uintptr(level), uintptr(internalformat), uintptr(x), uintptr(y), uintptr(width), uintptr(height), uintptr(border))
}

func CopyTexSubImage1D(target uint32, level, xoffset, x, y, width int32) {
	procCopyTexSubImage1D.Call(uintptr(target), uintptr(level), uintptr(xoffset), uintptr(x), uintptr(y), uintptr(width))
}

func CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32) {
	procCopyTexSubImage2D.Call(uintptr(target), uintptr(level), uintptr(xoffset), uintptr(yoffset), uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func TexSubImage1D(target uint32, level, xoffset, width int32, format, xtype uint32, pixels unsafe.Pointer) {
	procTexSubImage1D.Call(uintptr(target), uintptr(level), uintptr(xoffset), uintptr(width), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	procTexSubImage2D.Call(uintptr(target), uintptr(level), uintptr(xoffset), uintptr(yoffset), uintptr(width), uintptr(height), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func BindTexture(target, texture uint32) {
	procBindTexture.Call(uintptr(target), uintptr(texture))
}

func DeleteTextures(n int32, textures *uint32) {
	procDeleteTextures.Call(uintptr(n), uintptr(unsafe.Pointer(textures)))
}

func GenTextures(n int32, textures *uint32) {
	procGenTextures.Call(uintptr(n), uintptr(unsafe.Pointer(textures)))
}

func IsTexture(texture uint32) bool {
	r1, _ := procIsTexture.Call(uintptr(texture))
	return r1 == TRUE
}
