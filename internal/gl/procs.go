package gl

import "github.com/davellis/wingl/internal/glproc"

// One Proc per entry point. The slots are populated by Init; each one
// resolves its driver address on first call and caches it after that.
var (
	procBindTexture            *glproc.Proc
	procBlendFunc              *glproc.Proc
	procClear                  *glproc.Proc
	procClearColor             *glproc.Proc
	procClearDepth             *glproc.Proc
	procClearStencil           *glproc.Proc
	procColorMask              *glproc.Proc
	procCopyTexImage1D         *glproc.Proc
	procCopyTexImage2D         *glproc.Proc
	procCopyTexSubImage1D      *glproc.Proc
	procCopyTexSubImage2D      *glproc.Proc
	procCullFace               *glproc.Proc
	procDeleteTextures         *glproc.Proc
	procDepthFunc              *glproc.Proc
	procDepthMask              *glproc.Proc
	procDepthRange             *glproc.Proc
	procDisable                *glproc.Proc
	procDrawArrays             *glproc.Proc
	procDrawBuffer             *glproc.Proc
	procDrawElements           *glproc.Proc
	procEnable                 *glproc.Proc
	procFinish                 *glproc.Proc
	procFlush                  *glproc.Proc
	procFrontFace              *glproc.Proc
	procGenTextures            *glproc.Proc
	procGetBooleanv            *glproc.Proc
	procGetDoublev             *glproc.Proc
	procGetError               *glproc.Proc
	procGetFloatv              *glproc.Proc
	procGetIntegerv            *glproc.Proc
	procGetPointerv            *glproc.Proc
	procGetString              *glproc.Proc
	procGetTexImage            *glproc.Proc
	procGetTexLevelParameterfv *glproc.Proc
	procGetTexLevelParameteriv *glproc.Proc
	procGetTexParameterfv      *glproc.Proc
	procGetTexParameteriv      *glproc.Proc
	procHint                   *glproc.Proc
	procIsEnabled              *glproc.Proc
	procIsTexture              *glproc.Proc
	procLineWidth              *glproc.Proc
	procLogicOp                *glproc.Proc
	procPixelStoref            *glproc.Proc
	procPixelStorei            *glproc.Proc
	procPointSize              *glproc.Proc
	procPolygonMode            *glproc.Proc
	procPolygonOffset          *glproc.Proc
	procReadBuffer             *glproc.Proc
	procReadPixels             *glproc.Proc
	procScissor                *glproc.Proc
	procStencilFunc            *glproc.Proc
	procStencilMask            *glproc.Proc
	procStencilOp              *glproc.Proc
	procTexImage1D             *glproc.Proc
	procTexImage2D             *glproc.Proc
	procTexParameterf          *glproc.Proc
	procTexParameterfv         *glproc.Proc
	procTexParameteri          *glproc.Proc
	procTexParameteriv         *glproc.Proc
	procTexSubImage1D          *glproc.Proc
	procTexSubImage2D          *glproc.Proc
	procViewport               *glproc.Proc
)

// bound lists every registered Proc so tests can check the table.
var bound []*glproc.Proc

func bind(l *glproc.Loader, name string) *glproc.Proc {
	p := l.NewProc(name)
	bound = append(bound, p)
	return p
}

// Init points the entry-point table at a loader. It must be called
// before any GL function, typically right after glproc.Open. Calling
// it again rebinds the table and drops all cached addresses.
func Init(l *glproc.Loader) {
	bound = bound[:0]

	procBindTexture = bind(l, "glBindTexture")
	procBlendFunc = bind(l, "glBlendFunc")
	procClear = bind(l, "glClear")
	procClearColor = bind(l, "glClearColor")
	procClearDepth = bind(l, "glClearDepth")
	procClearStencil = bind(l, "glClearStencil")
	procColorMask = bind(l, "glColorMask")
	procCopyTexImage1D = bind(l, "glCopyTexImage1D")
	procCopyTexImage2D = bind(l, "glCopyTexImage2D")
	procCopyTexSubImage1D = bind(l, "glCopyTexSubImage1D")
	procCopyTexSubImage2D = bind(l, "glCopyTexSubImage2D")
	procCullFace = bind(l, "glCullFace")
	procDeleteTextures = bind(l, "glDeleteTextures")
	procDepthFunc = bind(l, "glDepthFunc")
	procDepthMask = bind(l, "glDepthMask")
	procDepthRange = bind(l, "glDepthRange")
	procDisable = bind(l, "glDisable")
	procDrawArrays = bind(l, "glDrawArrays")
	procDrawBuffer = bind(l, "glDrawBuffer")
	procDrawElements = bind(l, "glDrawElements")
	procEnable = bind(l, "glEnable")
	procFinish = bind(l, "glFinish")
	procFlush = bind(l, "glFlush")
	procFrontFace = bind(l, "glFrontFace")
	procGenTextures = bind(l, "glGenTextures")
	procGetBooleanv = bind(l, "glGetBooleanv")
	procGetDoublev = bind(l, "glGetDoublev")
	procGetError = bind(l, "glGetError")
	procGetFloatv = bind(l, "glGetFloatv")
	procGetIntegerv = bind(l, "glGetIntegerv")
	procGetPointerv = bind(l, "glGetPointerv")
	procGetString = bind(l, "glGetString")
	procGetTexImage = bind(l, "glGetTexImage")
	procGetTexLevelParameterfv = bind(l, "glGetTexLevelParameterfv")
	procGetTexLevelParameteriv = bind(l, "glGetTexLevelParameteriv")
	procGetTexParameterfv = bind(l, "glGetTexParameterfv")
	procGetTexParameteriv = bind(l, "glGetTexParameteriv")
	procHint = bind(l, "glHint")
	procIsEnabled = bind(l, "glIsEnabled")
	procIsTexture = bind(l, "glIsTexture")
	procLineWidth = bind(l, "glLineWidth")
	procLogicOp = bind(l, "glLogicOp")
	procPixelStoref = bind(l, "glPixelStoref")
	procPixelStorei = bind(l, "glPixelStorei")
	procPointSize = bind(l, "glPointSize")
	procPolygonMode = bind(l, "glPolygonMode")
	procPolygonOffset = bind(l, "glPolygonOffset")
	procReadBuffer = bind(l, "glReadBuffer")
	procReadPixels = bind(l, "glReadPixels")
	procScissor = bind(l, "glScissor")
	procStencilFunc = bind(l, "glStencilFunc")
	procStencilMask = bind(l, "glStencilMask")
	procStencilOp = bind(l, "glStencilOp")
	procTexImage1D = bind(l, "glTexImage1D")
	procTexImage2D = bind(l, "glTexImage2D")
	procTexParameterf = bind(l, "glTexParameterf")
	procTexParameterfv = bind(l, "glTexParameterfv")
	procTexParameteri = bind(l, "glTexParameteri")
	procTexParameteriv = bind(l, "glTexParameteriv")
	procTexSubImage1D = bind(l, "glTexSubImage1D")
	procTexSubImage2D = bind(l, "glTexSubImage2D")
	procViewport = bind(l, "glViewport")
}
