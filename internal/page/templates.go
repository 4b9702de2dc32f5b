package page

// shellTemplate is the single page every view is rendered into. Navigation
// controls carry their view name in data-view; views render into
// #main-content.
const shellTemplate = `<!DOCTYPE html>
<html lang="fa" dir="rtl">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="https://cdn.tailwindcss.com"></script>
<script src="https://unpkg.com/lucide@latest"></script>
<style>
.nav-link.active { background: #eef2ff; color: #4338ca; font-weight: 600; }
</style>
</head>
<body class="bg-gray-50 text-gray-800">
<div class="flex min-h-screen">
  <aside class="w-64 bg-white border-l border-gray-200 p-4">
    <div class="flex items-center gap-2 mb-8">
      <i data-lucide="graduation-cap"></i>
      <span class="text-lg font-bold">{{.Title}}</span>
    </div>
    <nav class="flex flex-col gap-1">
      {{- range .Nav}}
      <a href="#{{.View}}" class="nav-link flex items-center gap-2 rounded px-3 py-2" data-view="{{.View}}">
        <i data-lucide="{{.Icon}}"></i><span>{{.Label}}</span>
      </a>
      {{- end}}
    </nav>
  </aside>
  <main id="main-content" class="flex-1 p-8"></main>
</div>
{{- if .Script}}
<script src="{{.Script}}" defer></script>
{{- end}}
</body>
</html>
`
